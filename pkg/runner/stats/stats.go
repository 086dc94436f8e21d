// Package stats prints what has been submitted, by item and by month.
package stats

import (
	"context"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
)

type Stats struct {
	Service *app.Service
	JSON    bool
}

func (n *Stats) Do(ctx context.Context) error {
	r, err := n.Service.Report()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(nil, r)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Submitted", r.Total)
	pp.Statistics(r.Items)
	if len(r.Monthly) > 0 {
		pp.Title("By month")
		pp.Monthly(r.Monthly)
	}
	return nil
}
