// Package httpx provides a minimal http.Client abstraction.
package httpx

import (
	"net/http"
	"time"
)

// BasicClient is a simpler http.Client that only requires a Do method.
type BasicClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ BasicClient = http.DefaultClient

// WithUserAgent sets the User-Agent header on every request.
type WithUserAgent struct {
	BasicClient
	UserAgent string
}

var _ BasicClient = &WithUserAgent{}

func (c *WithUserAgent) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.UserAgent)
	return c.BasicClient.Do(req)
}

// NewClient returns an http.Client that gives up on a request after timeout.
// A zero timeout means no limit.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
