package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Counts per item type and per month.",
		Example: `
subtrack stats
subtrack stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			s := stats.Stats{Service: svc, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
