package gitea

import "context"

// UserService is the user-scoped subset of the API: the authenticated
// account, its social graph, and its stars.
type UserService interface {
	GetUserInfo(ctx context.Context) (*User, error)
	GetEmail(ctx context.Context) ([]Email, error)
	AddUserEmail(ctx context.Context, emails []string) ([]Email, error)
	GetFollowers(ctx context.Context) ([]User, error)
	GetFollowing(ctx context.Context) ([]User, error)
	FollowUser(ctx context.Context, username string) error
	UnfollowUser(ctx context.Context, username string) error
	GetUserOrgs(ctx context.Context) ([]Organization, error)
	GetStarredRepos(ctx context.Context) ([]Repository, error)
	StarRepo(ctx context.Context, owner, repo string) error
}

// Users returns the user-scoped view of c.
func (c *Client) Users() UserService {
	return userService{c: c}
}

type userService struct {
	c *Client
}

func (s userService) GetUserInfo(ctx context.Context) (*User, error) { return s.c.GetUserInfo(ctx) }
func (s userService) GetEmail(ctx context.Context) ([]Email, error)  { return s.c.GetEmail(ctx) }
func (s userService) AddUserEmail(ctx context.Context, emails []string) ([]Email, error) {
	return s.c.AddUserEmail(ctx, emails)
}
func (s userService) GetFollowers(ctx context.Context) ([]User, error) { return s.c.GetFollowers(ctx) }
func (s userService) GetFollowing(ctx context.Context) ([]User, error) { return s.c.GetFollowing(ctx) }
func (s userService) FollowUser(ctx context.Context, username string) error {
	return s.c.FollowUser(ctx, username)
}
func (s userService) UnfollowUser(ctx context.Context, username string) error {
	return s.c.UnfollowUser(ctx, username)
}
func (s userService) GetUserOrgs(ctx context.Context) ([]Organization, error) {
	return s.c.GetUserOrgs(ctx)
}
func (s userService) GetStarredRepos(ctx context.Context) ([]Repository, error) {
	return s.c.GetStarredRepos(ctx)
}
func (s userService) StarRepo(ctx context.Context, owner, repo string) error {
	return s.c.StarRepo(ctx, owner, repo)
}

var _ UserService = (*Client)(nil)
