package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

// orgCommand creates the org command group.
func (c *CLI) orgCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"orgs"},
		Short:   "Manage organizations, their teams, repositories and webhooks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <org>",
		Short: "Show an organization",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			org, err := spin(ctx, "Fetching organization...", func(ctx context.Context) (*gitea.Organization, error) {
				return client.GetOrganization(ctx, args[0])
			})
			if err != nil {
				return err
			}
			printOrg(org)
			return nil
		}),
	})

	cmd.AddCommand(c.orgCreateCommand())
	cmd.AddCommand(c.orgEditCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "members <org>",
		Short: "List organization members",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			members, err := spin(ctx, "Fetching members...", func(ctx context.Context) ([]gitea.User, error) {
				return client.GetOrgMembers(ctx, args[0])
			})
			if err != nil {
				return err
			}
			printUsers(members)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "teams <org>",
		Short: "List organization teams",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			teams, err := spin(ctx, "Fetching teams...", func(ctx context.Context) ([]gitea.Team, error) {
				return client.GetOrgTeams(ctx, args[0])
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(teams))
			for _, t := range teams {
				rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Name, t.Permission, orDash(t.Description)})
			}
			printTable("No teams", []string{"ID", "NAME", "PERMISSION", "DESCRIPTION"}, rows)
			return nil
		}),
	})

	cmd.AddCommand(c.teamCommand())
	cmd.AddCommand(c.orgRepoCommand())
	cmd.AddCommand(c.orgHookCommand())

	return cmd
}

func (c *CLI) orgCreateCommand() *cobra.Command {
	var opt gitea.CreateOrgOption
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an organization",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			opt.UserName = args[0]
			org, err := spin(ctx, "Creating organization...", func(ctx context.Context) (*gitea.Organization, error) {
				return client.CreateOrganization(ctx, &opt)
			})
			if err != nil {
				return err
			}
			printSuccess("Created organization %s", org.UserName)
			printNextStep("Add a team", appName+" org team create "+org.UserName+" <name>")
			return nil
		}),
	}
	bindOrgFields(cmd, &opt.FullName, &opt.Description, &opt.Website, &opt.Location, &opt.Visibility)
	return cmd
}

func (c *CLI) orgEditCommand() *cobra.Command {
	var opt gitea.EditOrgOption
	cmd := &cobra.Command{
		Use:   "edit <org>",
		Short: "Edit an organization's profile",
		Long:  "Edit an organization's profile. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			if opt == (gitea.EditOrgOption{}) {
				return errs.New(errs.ErrCodeValidation, "nothing to change: pass at least one field flag")
			}
			org, err := spin(ctx, "Updating organization...", func(ctx context.Context) (*gitea.Organization, error) {
				return client.EditOrganization(ctx, args[0], &opt)
			})
			if err != nil {
				return err
			}
			printSuccess("Updated organization %s", org.UserName)
			printOrg(org)
			return nil
		}),
	}
	bindOrgFields(cmd, &opt.FullName, &opt.Description, &opt.Website, &opt.Location, &opt.Visibility)
	return cmd
}

func bindOrgFields(cmd *cobra.Command, fullName, description, website, location, visibility *string) {
	flags := cmd.Flags()
	flags.StringVar(fullName, "full-name", "", "display name")
	flags.StringVar(description, "description", "", "description")
	flags.StringVar(website, "website", "", "website URL")
	flags.StringVar(location, "location", "", "location")
	flags.StringVar(visibility, "visibility", "", "public, limited or private")
}

func (c *CLI) teamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage organization teams",
	}

	var (
		description string
		permission  string
	)
	create := &cobra.Command{
		Use:   "create <org> <name>",
		Short: "Create a team",
		Args:  cobra.ExactArgs(2),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			team, err := spin(ctx, "Creating team...", func(ctx context.Context) (*gitea.Team, error) {
				return client.CreateOrgTeam(ctx, args[0], args[1], description, gitea.TeamPermission(permission))
			})
			if err != nil {
				return err
			}
			printSuccess("Created team %s in %s (id %d, %s access)", team.Name, args[0], team.ID, team.Permission)
			return nil
		}),
	}
	create.Flags().StringVar(&description, "description", "", "team description")
	create.Flags().StringVar(&permission, "permission", string(gitea.TeamPermissionRead), "read, write or admin")
	cmd.AddCommand(create)

	return cmd
}

func (c *CLI) orgRepoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage organization repositories",
	}

	var rf repoFlags
	create := &cobra.Command{
		Use:   "create <org>",
		Short: "Create a repository owned by an organization",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			cfg, err := rf.config()
			if err != nil {
				return err
			}
			repo, err := spin(ctx, "Creating repository...", func(ctx context.Context) (*gitea.Repository, error) {
				return client.CreateOrgRepo(ctx, args[0], cfg)
			})
			if err != nil {
				return err
			}
			printCreatedRepo(repo)
			return nil
		}),
	}
	rf.bind(create)
	cmd.AddCommand(create)

	return cmd
}

// =============================================================================
// Organization webhooks
// =============================================================================

func (c *CLI) orgHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Aliases: []string{"hooks"},
		Short:   "Manage organization webhooks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <org>",
		Short: "List organization webhooks",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			hooks, err := spin(ctx, "Fetching webhooks...", func(ctx context.Context) ([]gitea.Hook, error) {
				return client.GetOrgWebhooks(ctx, args[0])
			})
			if err != nil {
				return err
			}
			printHooks(hooks)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <org> <id>",
		Short: "Show an organization webhook",
		Args:  cobra.ExactArgs(2),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			id, err := parseHookID(args[1])
			if err != nil {
				return err
			}
			hook, err := spin(ctx, "Fetching webhook...", func(ctx context.Context) (*gitea.Hook, error) {
				return client.GetOrgHook(ctx, args[0], id)
			})
			if err != nil {
				return err
			}
			printHook(hook)
			return nil
		}),
	})

	var wf webhookFlags
	create := &cobra.Command{
		Use:   "create <org>",
		Short: "Register an organization webhook",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			hook, err := spin(ctx, "Creating webhook...", func(ctx context.Context) (*gitea.Hook, error) {
				return client.CreateOrgWebhook(ctx, args[0], wf.config())
			})
			if err != nil {
				return err
			}
			printSuccess("Created webhook %d on %s", hook.ID, args[0])
			return nil
		}),
	}
	wf.bind(create)
	cmd.AddCommand(create)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <org> <id>",
		Short: "Delete an organization webhook",
		Args:  cobra.ExactArgs(2),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			id, err := parseHookID(args[1])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(ctx, fmt.Sprintf("Delete webhook %d from %s?", id, args[0]), "deliveries stop immediately")
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Aborted")
					return nil
				}
			}
			if err := spinErr(ctx, "Deleting webhook...", func(ctx context.Context) error {
				return client.DeleteOrgHook(ctx, args[0], id)
			}); err != nil {
				return err
			}
			printSuccess("Deleted webhook %d", id)
			return nil
		}),
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.AddCommand(del)

	return cmd
}

func parseHookID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.New(errs.ErrCodeValidation, "hook id must be an integer, got %q", s)
	}
	return id, nil
}

// =============================================================================
// Rendering
// =============================================================================

func printOrg(o *gitea.Organization) {
	fmt.Fprintln(stdout, styleTitle.Render(o.UserName))
	if o.Description != "" {
		fmt.Fprintln(stdout, styleDim.Render(o.Description))
	}
	printKeyValue("Name", o.FullName)
	printKeyValue("Website", o.Website)
	printKeyValue("Location", o.Location)
	printKeyValue("Visibility", o.Visibility)
}

func printOrgs(orgs []gitea.Organization) {
	rows := make([][]string, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, []string{o.UserName, orDash(o.FullName), orDash(o.Visibility)})
	}
	printTable("No organizations", []string{"NAME", "FULL NAME", "VISIBILITY"}, rows)
}
