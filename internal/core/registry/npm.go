package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/LoriKarikari/npmcheck/internal/core/naming"
	"github.com/LoriKarikari/npmcheck/internal/httpx"
)

// DefaultNPMRegistry is the public npm registry.
const DefaultNPMRegistry = "https://registry.npmjs.org"

// drain limit for response bodies; only the status code is used.
const maxDrain = 64 << 10

// NPMClient checks names against an npm compatible registry with one GET
// per name. Nothing is cached and failed requests are not retried.
type NPMClient struct {
	client  httpx.BasicClient
	baseURL string
}

var _ Checker = &NPMClient{}

func NewNPMClient(client httpx.BasicClient, baseURL string) *NPMClient {
	if baseURL == "" {
		baseURL = DefaultNPMRegistry
	}
	return &NPMClient{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// URL returns the package document URL for name.
func (c *NPMClient) URL(name string) string {
	return c.baseURL + "/" + naming.EscapeComponent(name)
}

func (c *NPMClient) Check(ctx context.Context, name string) CheckResult {
	target := c.URL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return unknown(name, err.Error())
	}

	log.WithFields(log.Fields{
		"name": name,
		"url":  target,
	}).Debug("checking package name")

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("name", name).Debug("registry request failed")
		return unknown(name, err.Error())
	}
	defer closeBody(resp)

	log.WithFields(log.Fields{
		"name":   name,
		"status": resp.StatusCode,
	}).Debug("registry responded")

	switch resp.StatusCode {
	case http.StatusNotFound:
		return available(name)
	case http.StatusOK:
		return taken(name)
	default:
		return unknown(name, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}

func closeBody(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	if err := resp.Body.Close(); err != nil {
		log.WithError(err).Debug("failed to close response body")
	}
}
