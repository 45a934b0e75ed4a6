// Package suggest derives alternative package names from a taken one.
package suggest

import (
	"strings"

	"github.com/samber/lo"
)

// MaxAlternatives caps the number of names returned by Alternatives.
const MaxAlternatives = 10

var (
	prefixes = []string{"my-", "the-", "use-", "node-", "js-", "ts-"}
	suffixes = []string{"-js", "-ts", "-cli", "-lib", "-app", "-io", "-dev"}
	variants = []string{"2", "-v2", "-next"}
)

// Prefixes returns the prefixes tried by Alternatives, in order.
func Prefixes() []string {
	return append([]string(nil), prefixes...)
}

// Suffixes returns the suffixes tried by Alternatives, in order.
func Suffixes() []string {
	return append([]string(nil), suffixes...)
}

// Alternatives returns up to MaxAlternatives candidate names derived from
// name: prefixed forms, then suffixed forms, then numbered variants.
// Duplicates are not removed.
func Alternatives(name string) []string {
	prefixed := lo.FilterMap(prefixes, func(prefix string, _ int) (string, bool) {
		return prefix + name, !strings.HasPrefix(name, prefix)
	})
	suffixed := lo.FilterMap(suffixes, func(suffix string, _ int) (string, bool) {
		return name + suffix, !strings.HasSuffix(name, suffix)
	})
	numbered := lo.Map(variants, func(v string, _ int) string {
		return name + v
	})

	all := lo.Flatten([][]string{prefixed, suffixed, numbered})
	if len(all) > MaxAlternatives {
		all = all[:MaxAlternatives]
	}
	return all
}
