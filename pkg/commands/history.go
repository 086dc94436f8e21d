package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "List every stored day, newest first.",
		Example: `
subtrack history
subtrack history --last 2w
subtrack history --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := wo.GetWindow()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			s := history.History{
				Service: svc,
				Window:  window,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
