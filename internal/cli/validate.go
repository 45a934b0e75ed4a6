package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoriKarikari/npmcheck/internal/core/naming"
	"github.com/LoriKarikari/npmcheck/internal/report"
)

type validationEntry struct {
	Name       string                  `json:"name" yaml:"name"`
	Validation naming.ValidationResult `json:"validation" yaml:"validation"`
}

// validateNames reports the naming rules verdict for each name exactly as
// given. It fails with ErrInvalidNames when any name is rejected.
func validateNames(cmd *cobra.Command, names []string, format report.Format) error {
	entries := make([]validationEntry, 0, len(names))
	invalid := 0
	for _, name := range names {
		res := naming.Validate(name)
		if !res.Valid {
			invalid++
		}
		entries = append(entries, validationEntry{Name: name, Validation: res})
	}

	out := cmd.OutOrStdout()
	if format == report.FormatText {
		for _, e := range entries {
			if err := report.Validation(out, e.Name, e.Validation); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
	} else if err := report.Encode(out, format, entries); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidNames, invalid, len(names))
	}
	return nil
}
