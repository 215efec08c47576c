// Package fakegitea provides an in-process Gitea API server for tests.
//
// The server records every request it receives and answers from a table of
// canned responses keyed by method and chi route pattern:
//
//	srv := fakegitea.New(t)
//	srv.Handle("GET", "/api/v1/repos/{owner}/{repo}", http.StatusOK, gitea.Repository{Name: "demo"})
//	client, _ := gitea.NewClient(gitea.Config{BaseURL: srv.URL, Token: fakegitea.Token})
//
// Unregistered routes answer 404 with a Gitea-style {"message": ...} body.
package fakegitea

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Token is the access token the server accepts when token checking is on.
const Token = "fake-token"

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Token returns the "token" query parameter of the request.
func (r Request) Token() string { return r.Query.Get("token") }

// Server is a fake Gitea API server.
type Server struct {
	*httptest.Server

	t      testing.TB
	router chi.Router

	mu        sync.Mutex
	requests  []Request
	checkAuth bool
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{t: t, router: chi.NewRouter()}
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "The target couldn't be found."})
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "The target couldn't be found."})
	})
	// chi only runs Use middleware once a route exists, so wrap the router
	// directly to record requests on servers with no routes.
	s.Server = httptest.NewServer(s.record(s.auth(s.router)))
	t.Cleanup(s.Close)
	return s
}

// RequireToken makes every route except /api/v1/version answer 401 unless
// the request carries [Token].
func (s *Server) RequireToken() *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkAuth = true
	return s
}

// Handle registers a canned JSON answer. A nil body with status 204 sends
// no content. Routes must be registered before requests are made.
func (s *Server) Handle(method, pattern string, status int, body any) *Server {
	s.router.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body == nil {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, body)
	}))
	return s
}

// HandleFunc registers a custom handler.
func (s *Server) HandleFunc(method, pattern string, fn http.HandlerFunc) *Server {
	s.router.Method(method, pattern, fn)
	return s
}

// Requests returns a copy of every recorded request, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns the number of recorded requests.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Last returns the most recent request. It fails the test when none was
// made.
func (s *Server) Last() Request {
	s.t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		s.t.Fatalf("fakegitea: no requests recorded")
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		check := s.checkAuth
		s.mu.Unlock()

		if check && r.URL.Path != "/api/v1/version" && r.URL.Query().Get("token") != Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token is required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
