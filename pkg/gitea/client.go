package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/waspothegreat/gitea-go/pkg/buildinfo"
	errs "github.com/waspothegreat/gitea-go/pkg/errors"
	"github.com/waspothegreat/gitea-go/pkg/observability"
)

// APIPrefix is the versioned path every endpoint is rooted at.
const APIPrefix = "/api/v1"

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Config holds the settings for a [Client].
type Config struct {
	// BaseURL is the server root, e.g. "https://gitea.example.com". A sub-path
	// install ("https://example.com/gitea") is supported. Required.
	BaseURL string

	// Token is the access token sent as the "token" query parameter. Required.
	Token string

	// HTTPClient performs the requests. Defaults to a client without a
	// timeout; deadlines come from the caller's context.
	HTTPClient *http.Client

	// Logger receives one debug line per request. Nil discards.
	Logger *log.Logger

	// UserAgent overrides the default "gitea-go/<version>".
	UserAgent string
}

// Client is a Gitea API client. It is immutable after construction and safe
// for concurrent use.
type Client struct {
	baseURL   string
	host      string
	token     string
	http      *http.Client
	logger    *log.Logger
	userAgent string
}

// NewClient validates cfg and returns a Client. No request is made.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errs.New(errs.ErrCodeConfiguration, "no authentication token provided")
	}
	if err := errs.ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	u, _ := url.Parse(cfg.BaseURL)

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		host:      u.Host,
		token:     cfg.Token,
		http:      cfg.HTTPClient,
		logger:    cfg.Logger,
		userAgent: cfg.UserAgent,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.userAgent == "" {
		c.userAgent = buildinfo.UserAgent()
	}
	return c, nil
}

// BaseURL returns the server root the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// request describes one API call. path is relative to [APIPrefix] and must
// already be escaped.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	anon   bool
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path}, v)
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body}, v)
}

func (c *Client) put(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodPut, path: path}, nil)
}

func (c *Client) patch(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, request{method: http.MethodPatch, path: path, body: body}, v)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// do performs r and JSON-decodes a successful answer into v (when non-nil).
func (c *Client) do(ctx context.Context, r request, v any) error {
	apiPath := APIPrefix + r.path

	query := url.Values{}
	for k, vs := range r.query {
		query[k] = vs
	}
	if !r.anon {
		query.Set("token", c.token)
	}
	target := c.baseURL + apiPath
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	redacted := target
	if !r.anon {
		query.Set("token", "REDACTED")
		redacted = c.baseURL + apiPath + "?" + query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return errs.Wrap(errs.ErrCodeValidation, err, "encode %s %s body", r.method, apiPath)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return errs.Wrap(errs.ErrCodeValidation, err, "build %s %s", r.method, apiPath)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, r.method, c.host, apiPath)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) {
			urlErr.URL = redacted
		}
		hooks.OnError(ctx, r.method, c.host, apiPath, err)
		c.logger.Debug("request failed", "method", r.method, "path", apiPath, "request_id", requestID, "err", err)
		return errs.Wrap(errs.ErrCodeTransport, err, "%s %s", r.method, apiPath)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	hooks.OnResponse(ctx, r.method, c.host, apiPath, resp.StatusCode, elapsed)
	c.logger.Debug("request", "method", r.method, "path", apiPath, "status", resp.StatusCode,
		"duration", elapsed.Round(time.Millisecond), "request_id", requestID)

	if err := classify(resp); err != nil {
		return err
	}
	if v == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil && err != io.EOF {
		return errs.Wrap(errs.ErrCodeRemote, err, "decode %s %s response", r.method, apiPath)
	}
	return nil
}

// classify maps a non-2xx response onto an error code. 2xx returns nil.
func classify(resp *http.Response) error {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return errs.HTTP(errs.ErrCodeUnauthorized, status, "authentication failure, please provide a valid token")
	case http.StatusNotFound:
		msg := "resource not found"
		if m := remoteMessage(resp.Body); m != "" {
			msg += ": " + m
		}
		return errs.HTTP(errs.ErrCodeNotFound, status, "%s", msg)
	}

	msg := fmt.Sprintf("Error %d: %s", status, http.StatusText(status))
	if m := remoteMessage(resp.Body); m != "" {
		msg += ": " + m
	}
	return errs.HTTP(errs.ErrCodeRemote, status, "%s", msg)
}

// remoteMessage extracts the "message" field Gitea puts in API error bodies.
func remoteMessage(body io.Reader) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	if json.Unmarshal(data, &apiErr) != nil {
		return ""
	}
	return strings.TrimSpace(apiErr.Message)
}

// pathf formats an API path, escaping every argument as one path segment.
func pathf(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case string:
			escaped[i] = url.PathEscape(v)
		default:
			escaped[i] = v
		}
	}
	return fmt.Sprintf(format, escaped...)
}
