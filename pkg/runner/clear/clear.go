package clear

import (
	"context"
	"errors"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/printers"
)

var ErrNotConfirmed = errors.New("clear: refusing to wipe history without --yes")

// Clear wipes all history.
type Clear struct {
	Service *app.Service
	Confirm bool
}

func (n *Clear) Do(ctx context.Context) error {
	if !n.Confirm {
		return ErrNotConfirmed
	}
	days, err := n.Service.History(0)
	if err != nil {
		return err
	}
	if err := n.Service.Clear(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if serr := n.Service.SaveError(); serr != nil {
		pp.Warning("history not saved: %v", serr)
	}
	pp.TitleWithCount("Cleared days", len(days))
	return nil
}
