package submit

import (
	"context"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// Submit adds items and submits them into today's history.
type Submit struct {
	Service *app.Service
	Items   []string
	ShowID  bool
	JSON    bool
}

func (n *Submit) Do(ctx context.Context) error {
	today, err := n.Service.Submit(n.Items...)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if serr := n.Service.SaveError(); serr != nil {
		pp.Warning("history not saved: %v", serr)
	}
	if n.JSON {
		return printers.JSON(nil, today)
	}
	pp.NewLine()
	pp.Day(timeutil.FormatDayLong(n.Service.Store.Today()), today...)
	return nil
}
