package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/commands/options"
	"tableflip.dev/subtrack/pkg/runner/submit"
	"tableflip.dev/subtrack/pkg/snake"
)

func addSubmit(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "submit <item>...",
		Aliases: []string{"add"},
		Short:   "Add items and submit them into today's history.",
		Long: `Each argument becomes one item. Quote descriptions with spaces.
The first word of a description is its type, so "Shirt blue" and "Shirt"
are counted together and numbered in order of submission.`,
		Example: `
subtrack submit Shirt Shirt Pajama
subtrack submit "Bath Towel" "Shirt blue"
subtrack submit -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if i.Interactive {
				p := snake.Prompter{
					Quick:  svc.Config.QuickItems(),
					Stdin:  cmd.InOrStdin(),
					Stdout: cmd.OutOrStdout(),
				}
				picked, err := p.Items()
				if err != nil {
					return err
				}
				args = append(args, picked...)
			}
			s := submit.Submit{
				Service: svc,
				Items:   args,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
