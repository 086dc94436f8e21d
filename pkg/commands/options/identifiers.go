package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// ParseID accepts "3" or "#3".
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid item id %q, expected a positive number", arg)
	}
	return id, nil
}
