package get

import (
	"context"
	"time"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// Get prints the history of a single day.
type Get struct {
	Service *app.Service
	// On defaults to today.
	On     *time.Time
	ShowID bool
	JSON   bool
}

func (n *Get) Do(ctx context.Context) error {
	day := n.Service.Store.Today()
	if n.On != nil {
		day = timeutil.Day(*n.On, n.Service.Store.Location())
	}
	items, err := n.Service.Day(day)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(nil, app.DaySection{Day: day, Items: items})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Day(timeutil.FormatDayLong(day), items...)
	return nil
}
