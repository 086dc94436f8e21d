package history

import (
	"context"
	"time"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// History prints every stored day, newest first.
type History struct {
	Service *app.Service
	// Window limits output to recent days. Zero means everything.
	Window time.Duration
	ShowID bool
	JSON   bool
}

func (n *History) Do(ctx context.Context) error {
	days, err := n.Service.History(n.Window)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(nil, days)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if len(days) == 0 {
		pp.Title("History")
		pp.Items()
		return nil
	}
	for _, d := range days {
		pp.Day(timeutil.FormatDayLong(d.Day), d.Items...)
	}
	return nil
}
