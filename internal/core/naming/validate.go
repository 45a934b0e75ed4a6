// Package naming implements the registry naming rules for package names.
package naming

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength is the longest name the registry accepts, counted in UTF-16 code units.
const MaxLength = 214

const (
	ReasonEmpty        = "Name cannot be empty"
	ReasonTooLong      = "Name too long (max 214)"
	ReasonLeadingChar  = "Cannot start with . or _"
	ReasonNotLowercase = "Must be lowercase"
	ReasonInvalidChars = "Contains invalid characters"
)

const forbiddenChars = "~'!()*"

type ValidationResult struct {
	Valid  bool   `json:"valid" yaml:"valid"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// Validate reports whether name is an acceptable registry package name.
// Rules are applied in a fixed order and the first failing rule decides the
// reason, so the order below is observable.
func Validate(name string) ValidationResult {
	switch {
	case name == "":
		return invalid(ReasonEmpty)
	case codeUnits(name) > MaxLength:
		return invalid(ReasonTooLong)
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"):
		return invalid(ReasonLeadingChar)
	case name != Lower(name):
		return invalid(ReasonNotLowercase)
	case strings.ContainsAny(name, forbiddenChars):
		return invalid(ReasonInvalidChars)
	case EscapeComponent(name) != name:
		return invalid(ReasonInvalidChars)
	}
	return valid()
}

// Lower returns the Unicode lower-case mapping of s.
func Lower(s string) string {
	// cases.Caser carries state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(s)
}

func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
