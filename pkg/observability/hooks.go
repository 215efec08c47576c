// Package observability lets callers instrument gitea-go without tying it
// to a metrics or tracing backend.
//
// The API client reports every request through [HTTP], and the CLI webhook
// listener reports every delivery through [Webhook]. Both default to no-ops;
// install real hooks once at startup:
//
//	observability.SetHTTPHooks(promHooks)
//	client, _ := gitea.NewClient(cfg)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response, including non-2xx answers.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records a transport failure (no response obtained).
	OnError(ctx context.Context, method, host, path string, err error)
}

// WebhookHooks receives events from the webhook listener.
type WebhookHooks interface {
	// OnDelivery records a received delivery. err is non-nil when the
	// payload was rejected (bad signature, unknown event, malformed body).
	OnDelivery(ctx context.Context, event string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// NoopWebhookHooks is a no-op implementation of WebhookHooks.
type NoopWebhookHooks struct{}

func (NoopWebhookHooks) OnDelivery(context.Context, string, error) {}

// registry holds the installed hooks. Reads vastly outnumber writes.
type registry struct {
	mu      sync.RWMutex
	http    HTTPHooks
	webhook WebhookHooks
}

var hooks = &registry{http: NoopHTTPHooks{}, webhook: NoopWebhookHooks{}}

// SetHTTPHooks installs h for all clients. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.http = h
	hooks.mu.Unlock()
}

// SetWebhookHooks installs h for the webhook listener. A nil h is ignored.
func SetWebhookHooks(h WebhookHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.webhook = h
	hooks.mu.Unlock()
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Webhook returns the installed webhook hooks.
func Webhook() WebhookHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.webhook
}

// Reset reinstalls the no-op hooks.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.http = NoopHTTPHooks{}
	hooks.webhook = NoopWebhookHooks{}
}
