package received

import (
	"context"
	"time"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
)

// Received toggles whether a submitted item came back.
type Received struct {
	Service *app.Service
	ID      int
	On      *time.Time
	ShowID  bool
}

func (n *Received) Do(ctx context.Context) error {
	it, err := n.Service.ToggleReceived(n.ID, n.On)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if serr := n.Service.SaveError(); serr != nil {
		pp.Warning("history not saved: %v", serr)
	}
	if it.IsReceived {
		pp.Title("Received")
	} else {
		pp.Title("Outstanding")
	}
	pp.Items(it)
	return nil
}
