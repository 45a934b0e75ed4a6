package cli

import "errors"

var (
	ErrNoNames      = errors.New("no package name provided")
	ErrInvalidNames = errors.New("one or more names are invalid")
)
