package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/subtrack/pkg/app"
)

var (
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "subtrack",
		Short: base.Wrap80("Track items handed in for laundry (or anything else) and what came back."),
		Long: base.Wrap80("Items are collected into a pending list and submitted into a dated " +
			"history. History older than the configured retention is pruned automatically. " +
			"Configuration is read from .subtrack.yaml and SUBTRACK_* environment variables."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store diagnostics to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSubmit(topLevel)
	addDay(topLevel)
	addHistory(topLevel)
	addStats(topLevel)
	addRemove(topLevel)
	addReceived(topLevel)
	addClear(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func logger() *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openService() (*app.Service, error) {
	return app.Open(nil, logger())
}
