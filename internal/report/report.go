// Package report renders check results for the terminal or as JSON/YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/LoriKarikari/npmcheck/internal/core/check"
	"github.com/LoriKarikari/npmcheck/internal/core/naming"
	"github.com/LoriKarikari/npmcheck/internal/core/registry"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Printer writes name reports. Text output is streamed as reports arrive;
// JSON and YAML output is written as a single document by Close.
type Printer struct {
	w       io.Writer
	format  Format
	similar bool
	pending []check.NameReport
	err     error
}

func NewPrinter(w io.Writer, format Format, similar bool) *Printer {
	p := &Printer{w: w, format: format, similar: similar}
	if format == FormatText {
		p.println()
	}
	return p
}

// Report adds one name report. The first write error is kept and returned
// by Close.
func (p *Printer) Report(r check.NameReport) {
	if p.format != FormatText {
		p.pending = append(p.pending, r)
		return
	}

	switch {
	case !r.Validation.Valid:
		p.printf("%s  %s - Invalid: %s\n", yellow("⚠"), bold(r.Name), r.Validation.Reason)
	case r.Result == nil:
		p.printf("%s  %s - Error: not checked\n", yellow("?"), bold(r.Name))
	default:
		p.printResult(*r.Result)
		if p.similar && r.Result.Status() == registry.StatusTaken {
			p.printf("%s\n", dim("   Checking alternatives..."))
			for _, alt := range r.AvailableAlternatives() {
				p.printf("   %s %s\n", green("✓"), alt)
			}
		}
	}
}

func (p *Printer) printResult(res registry.CheckResult) {
	switch res.Status() {
	case registry.StatusUnknown:
		p.printf("%s  %s - Error: %s\n", yellow("?"), bold(res.Name), res.Error)
	case registry.StatusAvailable:
		p.printf("%s  %s - %s\n", green("✓"), bold(res.Name), green("Available!"))
	default:
		p.printf("%s  %s - %s\n", red("✗"), bold(res.Name), red("Taken"))
	}
}

// Close finishes the output.
func (p *Printer) Close() error {
	switch p.format {
	case FormatText:
		p.println()
	default:
		reports := p.pending
		if reports == nil {
			reports = []check.NameReport{}
		}
		if err := Encode(p.w, p.format, reports); err != nil && p.err == nil {
			p.err = err
		}
	}
	return p.err
}

// Validation writes the outcome of a syntax-only check.
func Validation(w io.Writer, name string, res naming.ValidationResult) error {
	var err error
	if res.Valid {
		_, err = fmt.Fprintf(w, "%s  %s - %s\n", green("✓"), bold(name), green("Valid"))
	} else {
		_, err = fmt.Fprintf(w, "%s  %s - Invalid: %s\n", yellow("⚠"), bold(name), res.Reason)
	}
	return err
}

// Encode writes v as a JSON or YAML document.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println() {
	p.printf("\n")
}
