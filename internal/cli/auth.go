package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

// loginCommand creates the login command.
func (c *CLI) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify a token and save it as the default profile",
		Long: `Verify the server URL and access token, then save them to
$XDG_CONFIG_HOME/gitea-go/config.toml (mode 0600) for future commands.

The URL and token come from --url/--token, or from GITEA_URL/GITEA_TOKEN
(a .env file in the working directory is loaded when present).`,
		Example: `  gitea-go login --url https://gitea.example.com --token $TOKEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := c.resolveSettings()
			if err != nil {
				return err
			}
			client, err := c.clientFor(s)
			if err != nil {
				return err
			}

			user, err := spin(ctx, "Verifying token...", client.GetUserInfo)
			if err != nil {
				return err
			}

			store, err := newProfileStore(c.ProfilePath)
			if err != nil {
				return err
			}
			profile := &Profile{
				URL:     strings.TrimRight(s.URL, "/"),
				Token:   s.Token,
				User:    user.UserName,
				SavedAt: time.Now().UTC(),
			}
			if err := store.Save(profile); err != nil {
				return err
			}

			loggerFromContext(ctx).Debug("profile saved", "path", store.Path())
			printSuccess("Logged in to %s as @%s", profile.URL, user.UserName)
			printDetail("Profile saved to %s", store.Path())
			return nil
		},
	}
}

// logoutCommand creates the logout command.
func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newProfileStore(c.ProfilePath)
			if err != nil {
				return err
			}
			if err := store.Delete(); err != nil {
				return err
			}
			printSuccess("Logged out")
			return nil
		},
	}
}

// whoamiCommand creates the whoami command.
func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			user, err := spin(ctx, "Fetching user...", client.GetUserInfo)
			if err != nil {
				return err
			}
			printUser(user)
			printKeyValue("Server", client.BaseURL())
			return nil
		},
	}
}

// serverVersionCommand creates the server-version command.
func (c *CLI) serverVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Show the Gitea server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			version, err := spin(ctx, "Querying server...", client.GetVersion)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, version)
			return nil
		},
	}
}

// withClient wraps a command body that needs an API client.
func (c *CLI) withClient(fn func(ctx context.Context, client *gitea.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := c.newClient(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, client, args)
	}
}
