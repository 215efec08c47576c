package gitea_test

import (
	"context"
	"strings"
	"testing"

	"github.com/waspothegreat/gitea-go/internal/fakegitea"
	errs "github.com/waspothegreat/gitea-go/pkg/errors"
	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

func validHook() gitea.WebhookConfig {
	return gitea.WebhookConfig{
		Active:      true,
		ContentType: gitea.ContentTypeJSON,
		URL:         "https://hooks.example.com/gitea",
		Events:      []gitea.HookEvent{gitea.EventPush},
		Type:        gitea.HookTypeGitea,
	}
}

func TestInvalidArgumentsSendNoRequest(t *testing.T) {
	srv := fakegitea.New(t).Seed()
	c := newClient(t, srv)
	ctx := context.Background()
	cfg := gitea.NewRepoBuilder().SetName("demo").Build()

	tests := []struct {
		name  string
		param string
		call  func() error
	}{
		{"GetRepository empty owner", "owner", func() error { _, err := c.GetRepository(ctx, "", "demo"); return err }},
		{"GetRepository blank repo", "repo", func() error { _, err := c.GetRepository(ctx, "alice", "  "); return err }},
		{"GetRepositoryForks", "repo", func() error { _, err := c.GetRepositoryForks(ctx, "alice", ""); return err }},
		{"ForkRepository", "owner", func() error { _, err := c.ForkRepository(ctx, "", "demo", "acme"); return err }},
		{"ForkRepository blank org", "org", func() error { _, err := c.ForkRepository(ctx, "alice", "demo", " "); return err }},
		{"GetRepositoryLabels", "owner", func() error { _, err := c.GetRepositoryLabels(ctx, "", ""); return err }},
		{"StarRepo", "repo", func() error { return c.StarRepo(ctx, "alice", "") }},
		{"CreateRepoHook owner", "owner", func() error { _, err := c.CreateRepoHook(ctx, "", "demo", validHook()); return err }},
		{"MakeRepository nil", "nil", func() error { _, err := c.MakeRepository(ctx, nil); return err }},
		{"MakeRepository no name", "name", func() error {
			_, err := c.MakeRepository(ctx, &gitea.RepositoryConfig{Description: "x"})
			return err
		}},
		{"CreateOrgRepo org", "org", func() error { _, err := c.CreateOrgRepo(ctx, "", &cfg); return err }},
		{"CreateOrgRepo nil", "nil", func() error { _, err := c.CreateOrgRepo(ctx, "acme", nil); return err }},
		{"GetOrganization", "org", func() error { _, err := c.GetOrganization(ctx, ""); return err }},
		{"CreateOrganization nil", "nil", func() error { _, err := c.CreateOrganization(ctx, nil); return err }},
		{"CreateOrganization no name", "username", func() error {
			_, err := c.CreateOrganization(ctx, &gitea.CreateOrgOption{})
			return err
		}},
		{"EditOrganization org", "org", func() error {
			_, err := c.EditOrganization(ctx, "", &gitea.EditOrgOption{})
			return err
		}},
		{"EditOrganization nil", "nil", func() error { _, err := c.EditOrganization(ctx, "acme", nil); return err }},
		{"GetOrgMembers", "org", func() error { _, err := c.GetOrgMembers(ctx, ""); return err }},
		{"GetOrgTeams", "org", func() error { _, err := c.GetOrgTeams(ctx, ""); return err }},
		{"CreateOrgTeam name", "name", func() error {
			_, err := c.CreateOrgTeam(ctx, "acme", "", "", gitea.TeamPermissionRead)
			return err
		}},
		{"CreateOrgTeam perm", "perm", func() error {
			_, err := c.CreateOrgTeam(ctx, "acme", "devs", "", "owner")
			return err
		}},
		{"GetOrgWebhooks", "org", func() error { _, err := c.GetOrgWebhooks(ctx, ""); return err }},
		{"CreateOrgWebhook", "org", func() error { _, err := c.CreateOrgWebhook(ctx, "", validHook()); return err }},
		{"GetOrgHook id", "id", func() error { _, err := c.GetOrgHook(ctx, "acme", 0); return err }},
		{"GetOrgHook org", "org", func() error { _, err := c.GetOrgHook(ctx, "", 7); return err }},
		{"DeleteOrgHook id", "id", func() error { return c.DeleteOrgHook(ctx, "acme", -1) }},
		{"GetUser", "username", func() error { _, err := c.GetUser(ctx, ""); return err }},
		{"GetUserRepositories", "username", func() error { _, err := c.GetUserRepositories(ctx, "\t"); return err }},
		{"AddUserEmail empty", "emails", func() error { _, err := c.AddUserEmail(ctx, nil); return err }},
		{"AddUserEmail blank entry", "emails[1]", func() error {
			_, err := c.AddUserEmail(ctx, []string{"a@example.com", ""})
			return err
		}},
		{"FollowUser", "username", func() error { return c.FollowUser(ctx, "") }},
		{"UnfollowUser", "username", func() error { return c.UnfollowUser(ctx, "") }},
		{"SearchTopic", "topic", func() error { _, err := c.SearchTopic(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errs.Is(err, errs.ErrCodeValidation) {
				t.Fatalf("error = %v, want VALIDATION", err)
			}
			if !strings.Contains(err.Error(), tt.param) {
				t.Errorf("error %q should name %q", err.Error(), tt.param)
			}
		})
	}

	if n := srv.Count(); n != 0 {
		t.Errorf("server received %d requests, want 0", n)
	}
}

func TestWebhookConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*gitea.WebhookConfig)
		wantErr string
	}{
		{"valid", func(*gitea.WebhookConfig) {}, ""},
		{"form content", func(w *gitea.WebhookConfig) { w.ContentType = gitea.ContentTypeForm }, ""},
		{"all events", func(w *gitea.WebhookConfig) { w.Events = gitea.HookEvents }, ""},
		{"every type", func(w *gitea.WebhookConfig) { w.Type = gitea.HookTypeDingtalk }, ""},
		{"missing url", func(w *gitea.WebhookConfig) { w.URL = "" }, "url"},
		{"relative url", func(w *gitea.WebhookConfig) { w.URL = "/hooks" }, "url"},
		{"bad content type", func(w *gitea.WebhookConfig) { w.ContentType = "xml" }, "content type"},
		{"bad hook type", func(w *gitea.WebhookConfig) { w.Type = "teams" }, "hook type"},
		{"no events", func(w *gitea.WebhookConfig) { w.Events = nil }, "events"},
		{"unknown event", func(w *gitea.WebhookConfig) { w.Events = []gitea.HookEvent{"push", "wiki"} }, "events[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validHook()
			tt.mutate(&w)
			err := w.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errs.Is(err, errs.ErrCodeValidation) || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want VALIDATION mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		input     string
		owner     string
		repo      string
		wantError bool
	}{
		{"alice/demo", "alice", "demo", false},
		{"demo", "", "", true},
		{"/demo", "", "", true},
		{"alice/", "", "", true},
		{"alice/demo/extra", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, repo, err := gitea.SplitFullName(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("SplitFullName(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if owner != tt.owner || repo != tt.repo {
				t.Errorf("SplitFullName(%q) = %q, %q", tt.input, owner, repo)
			}
		})
	}
}
