package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an item from history.",
		Long: `Delete an item from history by id (see --show-id on day or history).
Ids are renumbered afterwards so they stay 1..N.`,
		Example: `
subtrack rm 4
subtrack rm 4 --on 2025-3-1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			when, err := on.GetOn(time.Now(), svc.Store.Location())
			if err != nil {
				return err
			}
			s := remove.Remove{Service: svc, ID: id, On: when}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	_ = cmd.RegisterFlagCompletionFunc("on", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
