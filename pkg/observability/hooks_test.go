package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "gitea.example.com", "/api/v1/user")
	h.OnResponse(ctx, "GET", "gitea.example.com", "/api/v1/user", 200, time.Second)
	h.OnError(ctx, "GET", "gitea.example.com", "/api/v1/user", errors.New("refused"))

	w := NoopWebhookHooks{}
	w.OnDelivery(ctx, "push", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}
	if _, ok := Webhook().(NoopWebhookHooks); !ok {
		t.Error("Webhook() should return NoopWebhookHooks by default")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	customWebhook := &testWebhookHooks{}
	SetWebhookHooks(customWebhook)
	if Webhook() != customWebhook {
		t.Error("SetWebhookHooks should set custom hooks")
	}

	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
	if _, ok := Webhook().(NoopWebhookHooks); !ok {
		t.Error("Reset() should restore NoopWebhookHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}
}

type testHTTPHooks struct{ NoopHTTPHooks }
type testWebhookHooks struct{ NoopWebhookHooks }
