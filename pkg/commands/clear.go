package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history.",
		Example: `
subtrack clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			s := clear.Clear{Service: svc, Confirm: co.Yes}
			return s.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
