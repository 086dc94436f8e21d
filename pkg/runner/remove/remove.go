package remove

import (
	"context"
	"time"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
)

// Remove deletes an item from history.
type Remove struct {
	Service *app.Service
	ID      int
	// On restricts the lookup to one day.
	On *time.Time
}

func (n *Remove) Do(ctx context.Context) error {
	it, err := n.Service.Remove(n.ID, n.On)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if serr := n.Service.SaveError(); serr != nil {
		pp.Warning("history not saved: %v", serr)
	}
	pp.Title("Removed")
	pp.Items(it)
	return nil
}
