package cli

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/waspothegreat/gitea-go/pkg/buildinfo"
	"github.com/waspothegreat/gitea-go/pkg/gitea"
	"github.com/waspothegreat/gitea-go/pkg/observability"
)

const (
	// appName is the application name used for directories and display.
	appName = "gitea-go"

	// defaultTimeout bounds every HTTP request made by a command.
	defaultTimeout = 30 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// URL and Token are bound to the persistent --url/--token flags.
	URL     string
	Token   string
	Timeout time.Duration

	// EnvFile is loaded before every command when it exists.
	EnvFile string

	// ProfilePath overrides the profile location; empty uses the XDG path.
	ProfilePath string

	stats *requestStats
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Timeout: defaultTimeout,
		EnvFile: ".env",
		stats:   newRequestStats(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gitea-go talks to a Gitea server from the command line",
		Long:         `gitea-go is a CLI for the Gitea REST API: inspect users, repositories and organizations, create repositories, teams and webhooks, and receive webhook deliveries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(c.EnvFile); err != nil {
				return err
			}
			observability.SetHTTPHooks(c.stats)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.stats.log(c.Logger)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.URL, "url", "", "Gitea server URL (overrides "+envURL+" and the saved profile)")
	flags.StringVar(&c.Token, "token", "", "access token (overrides "+envToken+" and the saved profile)")
	flags.DurationVar(&c.Timeout, "timeout", defaultTimeout, "timeout for each API request")

	root.AddCommand(c.loginCommand())
	root.AddCommand(c.logoutCommand())
	root.AddCommand(c.whoamiCommand())
	root.AddCommand(c.serverVersionCommand())
	root.AddCommand(c.userCommand())
	root.AddCommand(c.repoCommand())
	root.AddCommand(c.orgCommand())
	root.AddCommand(c.topicCommand())
	root.AddCommand(c.hookCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newClient builds an API client from the resolved settings.
func (c *CLI) newClient(ctx context.Context) (*gitea.Client, error) {
	s, err := c.resolveSettings()
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("using server", "url", s.URL, "source", s.Source)
	return c.clientFor(s)
}

func (c *CLI) clientFor(s settings) (*gitea.Client, error) {
	return gitea.NewClient(gitea.Config{
		BaseURL:    s.URL,
		Token:      s.Token,
		HTTPClient: &http.Client{Timeout: c.Timeout},
		Logger:     c.Logger,
	})
}
