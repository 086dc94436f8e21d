package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/received"
)

func addReceived(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "received <id>",
		Aliases: []string{"got", "back"},
		Short:   "Toggle whether a submitted item came back.",
		Example: `
subtrack received 3
subtrack received 3 --on yesterday
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
			s := received.Received{Service: svc, ID: id, On: when, ShowID: io.ShowID}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("on", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
