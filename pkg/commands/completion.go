package commands

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/timeutil"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(subtrack completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(subtrack completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// dayCompletions offers the stored days, newest first.
func dayCompletions(toComplete string) []string {
	svc, err := app.Open(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return nil
	}
	days := svc.Store.Days()
	out := make([]string, 0, len(days)+2)
	for _, c := range []string{"today", "yesterday"} {
		if strings.HasPrefix(c, toComplete) {
			out = append(out, c)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	for _, d := range days {
		if s := timeutil.FormatDay(d); strings.HasPrefix(s, toComplete) {
			out = append(out, s)
		}
	}
	return out
}
