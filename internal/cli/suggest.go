package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoriKarikari/npmcheck/internal/core/suggest"
	"github.com/LoriKarikari/npmcheck/internal/report"
)

type suggestionEntry struct {
	Name         string   `json:"name" yaml:"name"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

func printSuggestions(cmd *cobra.Command, names []string, format report.Format) error {
	entries := make([]suggestionEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, suggestionEntry{Name: name, Alternatives: suggest.Alternatives(name)})
	}

	out := cmd.OutOrStdout()
	if format != report.FormatText {
		return report.Encode(out, format, entries)
	}

	// A single name prints a bare list so it can be piped.
	for _, e := range entries {
		indent := ""
		if len(entries) > 1 {
			if _, err := fmt.Fprintf(out, "%s:\n", e.Name); err != nil {
				return fmt.Errorf("failed to write suggestion: %w", err)
			}
			indent = "  "
		}
		for _, alt := range e.Alternatives {
			if _, err := fmt.Fprintln(out, indent+alt); err != nil {
				return fmt.Errorf("failed to write suggestion: %w", err)
			}
		}
	}
	return nil
}
