package report

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown output format: expected text, json or yaml")
)
