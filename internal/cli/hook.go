package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"gopkg.in/go-playground/webhooks.v5/gogs"

	"github.com/waspothegreat/gitea-go/pkg/gitea"
	"github.com/waspothegreat/gitea-go/pkg/observability"
)

// listenEvents are the deliveries the listener accepts. Gitea signs its
// gogs-compatible payloads with the X-Gogs-Signature header.
var listenEvents = []gogs.Event{
	gogs.CreateEvent,
	gogs.DeleteEvent,
	gogs.ForkEvent,
	gogs.PushEvent,
	gogs.IssuesEvent,
	gogs.IssueCommentEvent,
	gogs.PullRequestEvent,
	gogs.ReleaseEvent,
}

// hookCommand creates the hook command group.
func (c *CLI) hookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Receive webhook deliveries",
	}
	cmd.AddCommand(c.listenCommand())
	return cmd
}

func (c *CLI) listenCommand() *cobra.Command {
	var addr, secret, path string
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run an HTTP endpoint that verifies and logs webhook deliveries",
		Long: `Run an HTTP endpoint that verifies and logs webhook deliveries.

Register the endpoint with 'repo hook create' or 'org hook create' using
--type gogs and the same --secret. Each delivery is checked against the
HMAC-SHA256 signature before it is logged.`,
		Example: `  gitea-go hook listen --addr :8080 --secret s3cret`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			handler, err := newHookHandler(secret, logger)
			if err != nil {
				return err
			}
			r := chi.NewRouter()
			r.Use(middleware.RequestID, middleware.Recoverer)
			r.Method(http.MethodPost, path, handler)

			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			printInfo("Listening for deliveries on %s%s", addr, path)
			if secret == "" {
				printWarning("No --secret given; deliveries are not verified")
			}

			select {
			case err := <-errCh:
				return fmt.Errorf("listen on %s: %w", addr, err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("listener stopped")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", ":8080", "address to listen on")
	flags.StringVar(&secret, "secret", "", "shared secret used to verify signatures")
	flags.StringVar(&path, "path", "/webhook", "URL path deliveries are posted to")
	return cmd
}

// newHookHandler returns a handler that parses a delivery, reports it to
// the webhook observability hooks and logs it. It answers 204 for accepted
// deliveries, 202 for events it does not handle and 400 for anything that
// fails parsing or signature verification.
func newHookHandler(secret string, logger *log.Logger) (http.Handler, error) {
	var opts []gogs.Option
	if secret != "" {
		opts = append(opts, gogs.Options.Secret(secret))
	}
	hook, err := gogs.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create webhook parser: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event := r.Header.Get("X-Gogs-Event")
		delivery := r.Header.Get("X-Gogs-Delivery")

		_, err := hook.Parse(r, listenEvents...)
		observability.Webhook().OnDelivery(r.Context(), event, err)

		switch {
		case errors.Is(err, gogs.ErrEventNotFound):
			logger.Debug("ignored delivery", "event", event, "delivery", delivery)
			w.WriteHeader(http.StatusAccepted)
		case err != nil:
			logger.Warn("rejected delivery", "event", event, "delivery", delivery, "err", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logger.Info("delivery", "event", event, "delivery", delivery)
			w.WriteHeader(http.StatusNoContent)
		}
	}), nil
}

// =============================================================================
// Repository webhooks
// =============================================================================

func (c *CLI) repoHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Aliases: []string{"hooks"},
		Short:   "Manage repository webhooks",
	}

	var wf webhookFlags
	create := &cobra.Command{
		Use:   "create <owner/repo>",
		Short: "Register a repository webhook",
		Example: `  gitea-go repo hook create alice/demo --target-url https://ci.example.com/hook --events push,pull_request
  gitea-go repo hook create alice/demo --target-url http://localhost:8080/webhook --type gogs --secret s3cret`,
		Args: cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			hook, err := spin(ctx, "Creating webhook...", func(ctx context.Context) (*gitea.Hook, error) {
				return client.CreateRepoHook(ctx, owner, name, wf.config())
			})
			if err != nil {
				return err
			}
			printSuccess("Created webhook %d on %s/%s", hook.ID, owner, name)
			return nil
		}),
	}
	wf.bind(create)
	cmd.AddCommand(create)

	return cmd
}

// webhookFlags collects a webhook definition from flags.
type webhookFlags struct {
	url         string
	contentType string
	events      []string
	hookType    string
	secret      string
	inactive    bool
}

func (f *webhookFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.url, "target-url", "", "URL deliveries are posted to")
	flags.StringVar(&f.contentType, "content-type", string(gitea.ContentTypeJSON), "payload encoding: json or form")
	flags.StringSliceVar(&f.events, "events", []string{string(gitea.EventPush)}, "events to subscribe to")
	flags.StringVar(&f.hookType, "type", string(gitea.HookTypeGitea), "hook type: "+joinHookTypes())
	flags.StringVar(&f.secret, "secret", "", "secret used to sign deliveries")
	flags.BoolVar(&f.inactive, "inactive", false, "create the hook disabled")
	_ = cmd.MarkFlagRequired("target-url")
}

// config returns the webhook definition. Validation happens in the client.
func (f *webhookFlags) config() gitea.WebhookConfig {
	events := make([]gitea.HookEvent, 0, len(f.events))
	for _, e := range f.events {
		events = append(events, gitea.HookEvent(strings.TrimSpace(e)))
	}
	return gitea.WebhookConfig{
		Active:      !f.inactive,
		ContentType: gitea.HookContentType(f.contentType),
		URL:         f.url,
		Events:      events,
		Type:        gitea.HookType(f.hookType),
		Secret:      f.secret,
	}
}

func joinHookTypes() string {
	s := make([]string, len(gitea.HookTypes))
	for i, t := range gitea.HookTypes {
		s[i] = string(t)
	}
	return strings.Join(s, ", ")
}

// =============================================================================
// Rendering
// =============================================================================

func printHook(h *gitea.Hook) {
	fmt.Fprintln(stdout, styleTitle.Render("Webhook "+strconv.FormatInt(h.ID, 10)))
	printKeyValue("Type", h.Type)
	printKeyValue("URL", h.Config["url"])
	printKeyValue("Content type", h.Config["content_type"])
	printKeyValue("Events", strings.Join(h.Events, ", "))
	printKeyValue("Active", yesNo(h.Active))
	printKeyValue("Updated", formatRelativeTime(h.Updated))
}

func printHooks(hooks []gitea.Hook) {
	rows := make([][]string, 0, len(hooks))
	for _, h := range hooks {
		rows = append(rows, []string{
			strconv.FormatInt(h.ID, 10),
			h.Type,
			orDash(h.Config["url"]),
			strings.Join(h.Events, ","),
			yesNo(h.Active),
		})
	}
	printTable("No webhooks", []string{"ID", "TYPE", "URL", "EVENTS", "ACTIVE"}, rows)
}
