package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only show recent days, example: --last=2w, --last=10d or --last=36h.`)
}

// GetWindow returns zero when --last was not given.
func (o *WindowOptions) GetWindow() (time.Duration, error) {
	if o.Last == "" {
		return 0, nil
	}
	d, _, err := timeutil.ParseWindow(o.Last)
	return d, err
}
