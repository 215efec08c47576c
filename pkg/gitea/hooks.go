package gitea

import (
	"context"
	"net/url"
	"strings"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// HookContentType is the encoding Gitea uses for delivered payloads.
type HookContentType string

const (
	ContentTypeJSON HookContentType = "json"
	ContentTypeForm HookContentType = "form"
)

// HookEvent is an event a webhook subscribes to.
type HookEvent string

const (
	EventCreate       HookEvent = "create"
	EventDelete       HookEvent = "delete"
	EventFork         HookEvent = "fork"
	EventPush         HookEvent = "push"
	EventIssues       HookEvent = "issues"
	EventIssueComment HookEvent = "issue_comment"
	EventPullRequest  HookEvent = "pull_request"
	EventRepository   HookEvent = "repository"
	EventRelease      HookEvent = "release"
)

// HookEvents lists every supported event.
var HookEvents = []HookEvent{
	EventCreate, EventDelete, EventFork, EventPush, EventIssues,
	EventIssueComment, EventPullRequest, EventRepository, EventRelease,
}

// HookType selects the payload flavor the server sends.
type HookType string

const (
	HookTypeGitea    HookType = "gitea"
	HookTypeGogs     HookType = "gogs"
	HookTypeSlack    HookType = "slack"
	HookTypeDiscord  HookType = "discord"
	HookTypeDingtalk HookType = "dingtalk"
)

// HookTypes lists every supported hook type.
var HookTypes = []HookType{HookTypeGitea, HookTypeGogs, HookTypeSlack, HookTypeDiscord, HookTypeDingtalk}

// WebhookConfig describes a webhook to register.
type WebhookConfig struct {
	Active      bool
	ContentType HookContentType
	URL         string
	Events      []HookEvent
	Type        HookType
	// Secret, when set, makes the server sign deliveries with HMAC-SHA256.
	Secret string
}

// Validate checks every field. The error names the first offending field.
func (w WebhookConfig) Validate() error {
	if err := errs.RequireString("url", w.URL); err != nil {
		return err
	}
	u, err := url.Parse(w.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.New(errs.ErrCodeValidation, "url must be an absolute http or https URL")
	}
	if !ValidContentType(w.ContentType) {
		return errs.New(errs.ErrCodeValidation, "content type must be one of json, form; got %q", w.ContentType)
	}
	if !ValidHookType(w.Type) {
		return errs.New(errs.ErrCodeValidation, "hook type must be one of %s; got %q", joinTypes(HookTypes), w.Type)
	}
	if len(w.Events) == 0 {
		return errs.New(errs.ErrCodeValidation, "events must be a non-empty list")
	}
	for i, e := range w.Events {
		if !ValidHookEvent(e) {
			return errs.New(errs.ErrCodeValidation, "events[%d]: unknown event %q", i, e)
		}
	}
	return nil
}

func (w WebhookConfig) option() CreateHookOption {
	cfg := map[string]string{
		"url":          w.URL,
		"content_type": string(w.ContentType),
	}
	if w.Secret != "" {
		cfg["secret"] = w.Secret
	}
	return CreateHookOption{
		Type:   w.Type,
		Config: cfg,
		Events: w.Events,
		Active: w.Active,
	}
}

// ValidContentType reports whether ct is a supported content type.
func ValidContentType(ct HookContentType) bool {
	return ct == ContentTypeJSON || ct == ContentTypeForm
}

// ValidHookEvent reports whether e is a supported event.
func ValidHookEvent(e HookEvent) bool {
	for _, known := range HookEvents {
		if e == known {
			return true
		}
	}
	return false
}

// ValidHookType reports whether t is a supported hook type.
func ValidHookType(t HookType) bool {
	for _, known := range HookTypes {
		if t == known {
			return true
		}
	}
	return false
}

func joinTypes(types []HookType) string {
	s := make([]string, len(types))
	for i, t := range types {
		s[i] = string(t)
	}
	return strings.Join(s, ", ")
}

// CreateRepoHook registers a webhook on a repository.
func (c *Client) CreateRepoHook(ctx context.Context, owner, repo string, hook WebhookConfig) (*Hook, error) {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	if err := hook.Validate(); err != nil {
		return nil, err
	}
	var h Hook
	if err := c.post(ctx, pathf("/repos/%s/%s/hooks", owner, repo), hook.option(), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetOrgWebhooks lists the webhooks of an organization.
func (c *Client) GetOrgWebhooks(ctx context.Context, org string) ([]Hook, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	var hooks []Hook
	if err := c.get(ctx, pathf("/orgs/%s/hooks", org), &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// CreateOrgWebhook registers a webhook on an organization.
func (c *Client) CreateOrgWebhook(ctx context.Context, org string, hook WebhookConfig) (*Hook, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	if err := hook.Validate(); err != nil {
		return nil, err
	}
	var h Hook
	if err := c.post(ctx, pathf("/orgs/%s/hooks", org), hook.option(), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetOrgHook fetches one organization webhook.
func (c *Client) GetOrgHook(ctx context.Context, org string, id int64) (*Hook, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	if err := errs.RequireID("id", id); err != nil {
		return nil, err
	}
	var h Hook
	if err := c.get(ctx, pathf("/orgs/%s/hooks/%d", org, id), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteOrgHook removes an organization webhook.
func (c *Client) DeleteOrgHook(ctx context.Context, org string, id int64) error {
	if err := errs.RequireString("org", org); err != nil {
		return err
	}
	if err := errs.RequireID("id", id); err != nil {
		return err
	}
	return c.delete(ctx, pathf("/orgs/%s/hooks/%d", org, id))
}
