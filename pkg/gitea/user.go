package gitea

import (
	"context"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// GetUserInfo returns the authenticated user.
func (c *Client) GetUserInfo(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetEmail lists the email addresses of the authenticated user.
func (c *Client) GetEmail(ctx context.Context) ([]Email, error) {
	var emails []Email
	if err := c.get(ctx, "/user/emails", &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// AddUserEmail adds addresses to the authenticated user and returns the
// created entries.
func (c *Client) AddUserEmail(ctx context.Context, emails []string) ([]Email, error) {
	if err := errs.RequireList("emails", emails); err != nil {
		return nil, err
	}
	var created []Email
	if err := c.post(ctx, "/user/emails", CreateEmailOption{Emails: emails}, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetFollowers lists the users following the authenticated user.
func (c *Client) GetFollowers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/user/followers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetFollowing lists the users the authenticated user follows.
func (c *Client) GetFollowing(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/user/following", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FollowUser follows username.
func (c *Client) FollowUser(ctx context.Context, username string) error {
	if err := errs.RequireString("username", username); err != nil {
		return err
	}
	return c.put(ctx, pathf("/user/following/%s", username))
}

// UnfollowUser stops following username.
func (c *Client) UnfollowUser(ctx context.Context, username string) error {
	if err := errs.RequireString("username", username); err != nil {
		return err
	}
	return c.delete(ctx, pathf("/user/following/%s", username))
}

// GetUserOrgs lists the organizations the authenticated user belongs to.
func (c *Client) GetUserOrgs(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "/user/orgs", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetStarredRepos lists the repositories starred by the authenticated user.
func (c *Client) GetStarredRepos(ctx context.Context) ([]Repository, error) {
	var repos []Repository
	if err := c.get(ctx, "/user/starred", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetUsers searches user accounts and returns the first result page.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var res searchResults[User]
	if err := c.get(ctx, "/users/search", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetUser fetches a user by login name.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	if err := errs.RequireString("username", username); err != nil {
		return nil, err
	}
	var u User
	if err := c.get(ctx, pathf("/users/%s", username), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserRepositories lists the repositories owned by username.
func (c *Client) GetUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	if err := errs.RequireString("username", username); err != nil {
		return nil, err
	}
	var repos []Repository
	if err := c.get(ctx, pathf("/users/%s/repos", username), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}
