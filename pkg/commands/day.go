package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/get"
)

func addDay(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"get", "today"},
		Short:   "List what was submitted on a day.",
		Example: `
subtrack day
subtrack day --on yesterday
subtrack day --on 3/1 --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			when, err := on.GetOn(time.Now(), svc.Store.Location())
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				Service: svc,
				On:      when,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, on)
	_ = cmd.RegisterFlagCompletionFunc("on", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
