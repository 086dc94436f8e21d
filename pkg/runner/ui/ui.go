package ui

import (
	"context"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/tui"
)

// UI runs the interactive session.
type UI struct {
	Service *app.Service
}

func (d *UI) Do(ctx context.Context) error {
	return tui.Run(ctx, d.Service)
}
