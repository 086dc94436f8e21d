package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/store"
	"tableflip.dev/subtrack/pkg/timeutil"
)

type Info struct {
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	w := color.Output

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintf(w, "%s found on env, using %s\n", store.ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(w, "%s env var not set\n", store.ConfigPathEnv)
	}

	if n.Service == nil || n.Service.Config == nil {
		return errors.New("info: no configuration loaded")
	}
	cfg := n.Service.Config

	if f := cfg.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(w, "Config file: ", f)
	} else {
		_, _ = fmt.Fprintln(w, "Config file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(w, "Config.path: ", cfg.BasePath())
	_, _ = fmt.Fprintf(w, "Retention:    %d months\n", cfg.RetentionMonths())
	_, _ = fmt.Fprintf(w, "Clean every:  %s\n", timeutil.FormatWindow(cfg.CleanInterval()))

	if n.Service.Persistence == nil {
		return fmt.Errorf("Failed to create persistence object.")
	}
	_, _ = fmt.Fprintln(w, "History file:", n.Service.Persistence.Path())

	days := n.Service.Store.Days()
	_, _ = fmt.Fprintf(w, "Days stored:  %d\n", len(days))
	if len(days) > 0 {
		_, _ = fmt.Fprintf(w, "Oldest:       %s\n", timeutil.FormatDay(days[0]))
		_, _ = fmt.Fprintf(w, "Newest:       %s\n", timeutil.FormatDay(days[len(days)-1]))
	}
	return nil
}
