package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2025-3-1", --on="3/1" or --on=yesterday.`)
}

// GetOn returns nil when --on was not given.
func (o *OnOptions) GetOn(now time.Time, loc *time.Location) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := timeutil.ParseOn(o.OnString, now, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
