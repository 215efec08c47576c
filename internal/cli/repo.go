package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

// repoCommand creates the repo command group.
func (c *CLI) repoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repo",
		Aliases: []string{"repos"},
		Short:   "Inspect, create and fork repositories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your repositories",
		Args:  cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			repos, err := spin(ctx, "Fetching repositories...", client.GetRepositories)
			if err != nil {
				return err
			}
			printRepos(repos)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <owner/repo>",
		Short: "Show repository details",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			repo, err := spin(ctx, "Fetching repository...", func(ctx context.Context) (*gitea.Repository, error) {
				return client.GetRepository(ctx, owner, name)
			})
			if err != nil {
				return err
			}
			printRepo(repo)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "forks <owner/repo>",
		Short: "List forks of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			forks, err := spin(ctx, "Fetching forks...", func(ctx context.Context) ([]gitea.Repository, error) {
				return client.GetRepositoryForks(ctx, owner, name)
			})
			if err != nil {
				return err
			}
			printRepos(forks)
			return nil
		}),
	})

	cmd.AddCommand(c.forkCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "labels <owner/repo>",
		Short: "List issue labels of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			labels, err := spin(ctx, "Fetching labels...", func(ctx context.Context) ([]gitea.Label, error) {
				return client.GetRepositoryLabels(ctx, owner, name)
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(labels))
			for _, l := range labels {
				rows = append(rows, []string{l.Name, "#" + strings.TrimPrefix(l.Color, "#"), orDash(l.Description)})
			}
			printTable("No labels", []string{"NAME", "COLOR", "DESCRIPTION"}, rows)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "star <owner/repo>",
		Short: "Star a repository",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			if err := spinErr(ctx, "Starring...", func(ctx context.Context) error {
				return client.StarRepo(ctx, owner, name)
			}); err != nil {
				return err
			}
			printSuccess("Starred %s/%s", owner, name)
			return nil
		}),
	})

	cmd.AddCommand(c.repoCreateCommand())
	cmd.AddCommand(c.repoHookCommand())

	return cmd
}

func (c *CLI) forkCommand() *cobra.Command {
	var org string
	cmd := &cobra.Command{
		Use:   "fork <owner/repo>",
		Short: "Fork a repository into your account or an organization",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRepo(func(ctx context.Context, client *gitea.Client, owner, name string) error {
			fork, err := spin(ctx, "Forking...", func(ctx context.Context) (*gitea.Repository, error) {
				return client.ForkRepository(ctx, owner, name, org)
			})
			if err != nil {
				return err
			}
			printSuccess("Forked %s/%s to %s", owner, name, fork.FullName)
			printKeyValue("Clone", fork.CloneURL)
			return nil
		}),
	}
	cmd.Flags().StringVar(&org, "org", "", "fork into this organization instead of your account")
	return cmd
}

func (c *CLI) repoCreateCommand() *cobra.Command {
	var rf repoFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a repository in your account",
		Example: `  gitea-go repo create --name demo --description "A demo" --private --auto-init
  gitea-go repo create --from repo.toml`,
		Args: cobra.NoArgs,
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			cfg, err := rf.config()
			if err != nil {
				return err
			}
			repo, err := spin(ctx, "Creating repository...", func(ctx context.Context) (*gitea.Repository, error) {
				return client.MakeRepository(ctx, cfg)
			})
			if err != nil {
				return err
			}
			printCreatedRepo(repo)
			return nil
		}),
	}
	rf.bind(cmd)
	return cmd
}

// withRepo wraps a command body taking a single owner/repo argument. The
// argument is checked before a client is built.
func (c *CLI) withRepo(fn func(ctx context.Context, client *gitea.Client, owner, repo string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		owner, repo, err := gitea.SplitFullName(args[0])
		if err != nil {
			return err
		}
		return c.withClient(func(ctx context.Context, client *gitea.Client, _ []string) error {
			return fn(ctx, client, owner, repo)
		})(cmd, args)
	}
}

// =============================================================================
// Repository configuration flags
// =============================================================================

// repoFlags collects a repository configuration either from individual
// flags or from a TOML file.
type repoFlags struct {
	from        string
	name        string
	description string
	gitignores  string
	license     string
	readme      string
	private     bool
	autoInit    bool
}

func (f *repoFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.from, "from", "", "read the configuration from a TOML file")
	flags.StringVar(&f.name, "name", "", "repository name")
	flags.StringVar(&f.description, "description", "", "repository description")
	flags.StringVar(&f.gitignores, "gitignores", "", "comma-separated .gitignore templates")
	flags.StringVar(&f.license, "license", "", "license template")
	flags.StringVar(&f.readme, "readme", "Default", "README template")
	flags.BoolVar(&f.private, "private", false, "make the repository private")
	flags.BoolVar(&f.autoInit, "auto-init", false, "create an initial commit")
	cmd.MarkFlagsMutuallyExclusive("from", "name")
}

// config builds the repository configuration. A --from file must carry
// every configuration key.
func (f *repoFlags) config() (*gitea.RepositoryConfig, error) {
	if f.from != "" {
		return loadRepoConfig(f.from)
	}
	b := gitea.NewRepoBuilder().
		SetName(f.name).
		SetDescription(f.description).
		SetGitignores(f.gitignores).
		SetLicense(f.license).
		SetReadme(f.readme)
	if f.private {
		b.Private()
	}
	if f.autoInit {
		b.AutoInit()
	}
	cfg := b.Build()
	return &cfg, nil
}

// loadRepoConfig decodes a TOML file into a repository configuration.
func loadRepoConfig(path string) (*gitea.RepositoryConfig, error) {
	var m map[string]any
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errs.Wrap(errs.ErrCodeConfiguration, err, "read %s", path)
	}
	return gitea.RepositoryConfigFromMap(m)
}

// =============================================================================
// Rendering
// =============================================================================

func printRepo(r *gitea.Repository) {
	fmt.Fprintln(stdout, styleTitle.Render(r.FullName))
	if r.Description != "" {
		fmt.Fprintln(stdout, styleDim.Render(r.Description))
	}
	fmt.Fprintln(stdout)
	printKeyValue("URL", r.HTMLURL)
	printKeyValue("Clone", r.CloneURL)
	printKeyValue("SSH", r.SSHURL)
	printKeyValue("Branch", r.DefaultBranch)
	printKeyValue("Visibility", visibility(r.Private))
	printKeyValue("Stars", strconv.Itoa(r.Stars))
	printKeyValue("Forks", strconv.Itoa(r.Forks))
	printKeyValue("Open issues", strconv.Itoa(r.OpenIssues))
	if r.Fork && r.Parent != nil {
		printKeyValue("Forked from", r.Parent.FullName)
	}
	if r.Archived {
		printWarning("This repository is archived")
	}
	printKeyValue("Updated", formatRelativeTime(r.Updated))
}

func printRepos(repos []gitea.Repository) {
	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		rows = append(rows, []string{
			r.FullName,
			visibility(r.Private),
			strconv.Itoa(r.Stars),
			formatRelativeTime(r.Updated),
		})
	}
	printTable("No repositories", []string{"REPOSITORY", "VISIBILITY", "STARS", "UPDATED"}, rows)
}

func printCreatedRepo(r *gitea.Repository) {
	printSuccess("Created %s", r.FullName)
	printKeyValue("URL", r.HTMLURL)
	printKeyValue("Clone", r.CloneURL)
	if r.CloneURL != "" {
		fmt.Fprintln(stdout)
		printNextStep("Clone it", "git clone "+r.CloneURL)
	}
}

func visibility(private bool) string {
	if private {
		return "private"
	}
	return "public"
}
