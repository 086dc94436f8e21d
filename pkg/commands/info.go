package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where history is stored.",
		Example: `
subtrack info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			s := info.Info{Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
