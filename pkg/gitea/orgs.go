package gitea

import (
	"context"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// TeamPermission is the access level granted to a team.
type TeamPermission string

const (
	TeamPermissionRead  TeamPermission = "read"
	TeamPermissionWrite TeamPermission = "write"
	TeamPermissionAdmin TeamPermission = "admin"
)

// Valid reports whether p is a permission a team can be created with.
func (p TeamPermission) Valid() bool {
	switch p {
	case TeamPermissionRead, TeamPermissionWrite, TeamPermissionAdmin:
		return true
	}
	return false
}

// defaultTeamUnits are the repository units a new team gets access to.
var defaultTeamUnits = []string{
	"repo.code", "repo.issues", "repo.pulls", "repo.releases", "repo.wiki",
}

// GetOrganization fetches an organization by name.
func (c *Client) GetOrganization(ctx context.Context, org string) (*Organization, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	var o Organization
	if err := c.get(ctx, pathf("/orgs/%s", org), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrganization creates an organization owned by the authenticated user.
func (c *Client) CreateOrganization(ctx context.Context, opt *CreateOrgOption) (*Organization, error) {
	if opt == nil {
		return nil, errs.New(errs.ErrCodeValidation, "organization options must not be nil")
	}
	if err := errs.RequireString("username", opt.UserName); err != nil {
		return nil, err
	}
	var o Organization
	if err := c.post(ctx, "/orgs", opt, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// EditOrganization updates an organization's profile.
func (c *Client) EditOrganization(ctx context.Context, org string, opt *EditOrgOption) (*Organization, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	if opt == nil {
		return nil, errs.New(errs.ErrCodeValidation, "organization options must not be nil")
	}
	var o Organization
	if err := c.patch(ctx, pathf("/orgs/%s", org), opt, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrgMembers lists the members of an organization.
func (c *Client) GetOrgMembers(ctx context.Context, org string) ([]User, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	var users []User
	if err := c.get(ctx, pathf("/orgs/%s/members", org), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetOrgTeams lists the teams of an organization.
func (c *Client) GetOrgTeams(ctx context.Context, org string) ([]Team, error) {
	if err := errs.RequireString("org", org); err != nil {
		return nil, err
	}
	var teams []Team
	if err := c.get(ctx, pathf("/orgs/%s/teams", org), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateOrgTeam creates a team in org. desc may be empty.
func (c *Client) CreateOrgTeam(ctx context.Context, org, name, desc string, perm TeamPermission) (*Team, error) {
	if err := errs.RequireStrings("org", org, "name", name); err != nil {
		return nil, err
	}
	if !perm.Valid() {
		return nil, errs.New(errs.ErrCodeValidation, "perm must be one of read, write, admin; got %q", perm)
	}
	opt := CreateTeamOption{
		Name:        name,
		Description: desc,
		Permission:  perm,
		Units:       defaultTeamUnits,
	}
	var t Team
	if err := c.post(ctx, pathf("/orgs/%s/teams", org), opt, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
