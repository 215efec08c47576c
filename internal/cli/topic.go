package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/waspothegreat/gitea-go/pkg/gitea"
)

// topicCommand creates the topic command group.
func (c *CLI) topicCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Search repository topics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Find topics matching a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: c.withClient(func(ctx context.Context, client *gitea.Client, args []string) error {
			topics, err := spin(ctx, "Searching topics...", func(ctx context.Context) ([]gitea.Topic, error) {
				return client.SearchTopic(ctx, args[0])
			})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(topics))
			for _, t := range topics {
				rows = append(rows, []string{t.Name, strconv.Itoa(t.RepoCount), formatRelativeTime(t.Updated)})
			}
			printTable("No matching topics", []string{"TOPIC", "REPOS", "UPDATED"}, rows)
			return nil
		}),
	})

	return cmd
}
