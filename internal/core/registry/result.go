package registry

import "context"

// Status is the outcome of an availability check.
type Status int

const (
	// StatusUnknown means the registry could not be asked or gave an
	// unexpected answer. CheckResult.Error says why.
	StatusUnknown Status = iota
	StatusAvailable
	StatusTaken
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusTaken:
		return "taken"
	default:
		return "unknown"
	}
}

// CheckResult is the answer for a single name. Error is only set when the
// check itself failed, in which case Available is always false.
type CheckResult struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r CheckResult) Status() Status {
	switch {
	case r.Error != "":
		return StatusUnknown
	case r.Available:
		return StatusAvailable
	default:
		return StatusTaken
	}
}

// Checker reports whether a name is free in a registry. Implementations
// never fail: every problem ends up in CheckResult.Error.
type Checker interface {
	Check(ctx context.Context, name string) CheckResult
}

func available(name string) CheckResult {
	return CheckResult{Name: name, Available: true}
}

func taken(name string) CheckResult {
	return CheckResult{Name: name}
}

func unknown(name, reason string) CheckResult {
	return CheckResult{Name: name, Error: reason}
}
