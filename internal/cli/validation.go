package cli

import (
	"github.com/spf13/cobra"

	"github.com/LoriKarikari/npmcheck/internal/core/naming"
)

func requireNames(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrNoNames
	}
	return nil
}

// normalizeNames lower-cases every requested name. Validation still runs on
// the result, so names that only differ in case are checked as one spelling.
func normalizeNames(args []string) []string {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		names = append(names, naming.Lower(arg))
	}
	return names
}
