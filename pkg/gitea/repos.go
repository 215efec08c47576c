package gitea

import (
	"context"
	"strings"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// GetRepositories searches public repositories visible to the caller and
// returns the first result page.
func (c *Client) GetRepositories(ctx context.Context) ([]Repository, error) {
	var res searchResults[Repository]
	if err := c.get(ctx, "/repos/search", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetRepository fetches owner/repo.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	var r Repository
	if err := c.get(ctx, pathf("/repos/%s/%s", owner, repo), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRepositoryForks lists the forks of owner/repo.
func (c *Client) GetRepositoryForks(ctx context.Context, owner, repo string) ([]Repository, error) {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	var forks []Repository
	if err := c.get(ctx, pathf("/repos/%s/%s/forks", owner, repo), &forks); err != nil {
		return nil, err
	}
	return forks, nil
}

// ForkRepository forks owner/repo into org, or into the authenticated
// user's account when org is empty.
func (c *Client) ForkRepository(ctx context.Context, owner, repo, org string) (*Repository, error) {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	var opt CreateForkOption
	if org != "" {
		if err := errs.RequireString("org", org); err != nil {
			return nil, err
		}
		opt.Organization = &org
	}
	var r Repository
	if err := c.post(ctx, pathf("/repos/%s/%s/forks", owner, repo), opt, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRepositoryLabels lists the issue labels of owner/repo.
func (c *Client) GetRepositoryLabels(ctx context.Context, owner, repo string) ([]Label, error) {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	var labels []Label
	if err := c.get(ctx, pathf("/repos/%s/%s/labels", owner, repo), &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// StarRepo stars owner/repo as the authenticated user.
func (c *Client) StarRepo(ctx context.Context, owner, repo string) error {
	if err := errs.RequireStrings("owner", owner, "repo", repo); err != nil {
		return err
	}
	return c.put(ctx, pathf("/user/starred/%s/%s", owner, repo))
}

// MakeRepository creates a repository owned by the authenticated user.
func (c *Client) MakeRepository(ctx context.Context, cfg *RepositoryConfig) (*Repository, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var r Repository
	if err := c.post(ctx, "/user/repos", cfg, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateOrgRepo creates a repository owned by org.
func (c *Client) CreateOrgRepo(ctx context.Context, org string, cfg *RepositoryConfig) (*Repository, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var r Repository
	if err := c.post(ctx, pathf("/orgs/%s/repos", org), cfg, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SplitFullName splits "owner/repo" into its two parts.
func SplitFullName(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", errs.New(errs.ErrCodeValidation, "repository must be given as owner/repo, got %q", fullName)
	}
	return owner, repo, nil
}
