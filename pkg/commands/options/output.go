package options

import (
	"encoding/json"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/subtrack/pkg/app"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as {"error": ..., "code": ...} in JSON mode and
// swallows it, so scripts read one document from stdout either way.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
		"code":  errorCode(err),
	}
	enc := json.NewEncoder(color.Output)
	if eerr := enc.Encode(out); eerr != nil {
		return err
	}
	return nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return "not_found"
	case errors.Is(err, app.ErrNothingToSubmit):
		return "nothing_to_submit"
	case errors.Is(err, app.ErrNoStore), errors.Is(err, app.ErrNoPersistence):
		return "unavailable"
	}
	return "error"
}
