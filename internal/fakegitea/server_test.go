package fakegitea

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestHandleServesCannedJSON(t *testing.T) {
	srv := New(t)
	srv.Handle("GET", "/api/v1/users/{username}", http.StatusOK, map[string]string{"login": "alice"})

	resp, err := http.Get(srv.URL + "/api/v1/users/alice?token=abc")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["login"] != "alice" {
		t.Errorf("login = %q, want alice", body["login"])
	}

	if srv.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", srv.Count())
	}
	last := srv.Last()
	if last.Method != "GET" || last.Path != "/api/v1/users/alice" {
		t.Errorf("Last() = %s %s", last.Method, last.Path)
	}
	if last.Token() != "abc" {
		t.Errorf("Token() = %q, want abc", last.Token())
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv := New(t)

	resp, err := http.Get(srv.URL + "/api/v1/nope")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), "message") {
		t.Errorf("body %q should carry a message", data)
	}
}

func TestRecordsRequestsWithoutRoutes(t *testing.T) {
	srv := New(t)

	resp, err := http.Get(srv.URL + "/api/v1/repos/some%20owner/repo?token=abc")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if srv.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", srv.Count())
	}
	if got := srv.Last().Path; got != "/api/v1/repos/some%20owner/repo" {
		t.Errorf("Path = %q", got)
	}
}

func TestRequireTokenWithoutRoutes(t *testing.T) {
	srv := New(t).RequireToken()

	resp, err := http.Get(srv.URL + "/api/v1/user")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRecordsBody(t *testing.T) {
	srv := New(t)
	srv.Handle("POST", "/api/v1/orgs", http.StatusCreated, map[string]string{"username": "acme"})

	resp, err := http.Post(srv.URL+"/api/v1/orgs", "application/json", strings.NewReader(`{"username":"acme"}`))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	resp.Body.Close()

	if got := string(srv.Last().Body); got != `{"username":"acme"}` {
		t.Errorf("Body = %q", got)
	}
}

func TestRequireToken(t *testing.T) {
	srv := New(t).Seed().RequireToken()

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing token", "/api/v1/user", http.StatusUnauthorized},
		{"wrong token", "/api/v1/user?token=wrong", http.StatusUnauthorized},
		{"valid token", "/api/v1/user?token=" + Token, http.StatusOK},
		{"version is public", "/api/v1/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET error: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestSeedNoContentRoutes(t *testing.T) {
	srv := New(t).Seed()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/orgs/acme/hooks/7", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}
