package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

// userCommand creates the user command group.
func (c *CLI) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect users and manage the authenticated account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <username>",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			user, err := spin(ctx, "Fetching user...", func(ctx context.Context) (*gitea.User, error) {
				return client.GetUser(ctx, args[0])
			})
			if err != nil {
				return err
			}
			printUser(user)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repos <username>",
		Short: "List a user's repositories",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			repos, err := spin(ctx, "Fetching repositories...", func(ctx context.Context) ([]gitea.Repository, error) {
				return client.GetUserRepositories(ctx, args[0])
			})
			if err != nil {
				return err
			}
			printRepos(repos)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search",
		Short: "List users visible to the token",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			users, err := spin(ctx, "Searching users...", client.GetUsers)
			if err != nil {
				return err
			}
			printUsers(users)
			return nil
		}),
	})

	cmd.AddCommand(c.emailsCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "followers",
		Short: "List your followers",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			users, err := spin(ctx, "Fetching followers...", client.GetFollowers)
			if err != nil {
				return err
			}
			printUsers(users)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "following",
		Short: "List the users you follow",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			users, err := spin(ctx, "Fetching followed users...", client.GetFollowing)
			if err != nil {
				return err
			}
			printUsers(users)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "follow <username>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			if err := spinErr(ctx, "Following...", func(ctx context.Context) error {
				return client.FollowUser(ctx, args[0])
			}); err != nil {
				return err
			}
			printSuccess("Now following @%s", args[0])
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unfollow <username>",
		Short: "Stop following a user",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			if err := spinErr(ctx, "Unfollowing...", func(ctx context.Context) error {
				return client.UnfollowUser(ctx, args[0])
			}); err != nil {
				return err
			}
			printSuccess("No longer following @%s", args[0])
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "orgs",
		Short: "List your organizations",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			orgs, err := spin(ctx, "Fetching organizations...", client.GetUserOrgs)
			if err != nil {
				return err
			}
			printOrgs(orgs)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "starred",
		Short: "List repositories you have starred",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			repos, err := spin(ctx, "Fetching starred repositories...", client.GetStarredRepos)
			if err != nil {
				return err
			}
			printRepos(repos)
			return nil
		}),
	})

	return cmd
}

func (c *CLI) emailsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emails",
		Short: "List the email addresses on your account",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			emails, err := spin(ctx, "Fetching emails...", client.GetEmail)
			if err != nil {
				return err
			}
			printEmails(emails)
			return nil
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <email>...",
		Short: "Add email addresses to your account",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			emails, err := spin(ctx, "Adding emails...", func(ctx context.Context) ([]gitea.Email, error) {
				return client.AddUserEmail(ctx, args)
			})
			if err != nil {
				return err
			}
			printSuccess("Added %d address(es)", len(args))
			printEmails(emails)
			return nil
		}),
	})

	return cmd
}

// =============================================================================
// Rendering
// =============================================================================

func printUser(u *gitea.User) {
	fmt.Fprintln(stdout, styleTitle.Render("@"+u.UserName))
	printKeyValue("Name", u.FullName)
	printKeyValue("Email", u.Email)
	printKeyValue("Location", u.Location)
	printKeyValue("Website", u.Website)
	if u.IsAdmin {
		printKeyValue("Admin", "yes")
	}
	printKeyValue("Followers", strconv.Itoa(u.Followers))
	printKeyValue("Following", strconv.Itoa(u.Following))
	if !u.Created.IsZero() {
		printKeyValue("Joined", formatRelativeTime(u.Created))
	}
}

func printUsers(users []gitea.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.UserName, orDash(u.FullName), orDash(u.Email)})
	}
	printTable("No users", []string{"LOGIN", "NAME", "EMAIL"}, rows)
}

func printEmails(emails []gitea.Email) {
	rows := make([][]string, 0, len(emails))
	for _, e := range emails {
		rows = append(rows, []string{e.Email, yesNo(e.Primary), yesNo(e.Verified)})
	}
	printTable("No email addresses", []string{"EMAIL", "PRIMARY", "VERIFIED"}, rows)
}
