package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"oras.land/oras-go/v2/errdef"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/errcode"
)

const defaultTag = "latest"

// OCIClient checks whether a repository name is still free under a namespace
// of an OCI registry, e.g. ghcr.io/acme. A name is free when its tag cannot
// be resolved.
type OCIClient struct {
	namespace  string
	tag        string
	httpClient *http.Client
	plainHTTP  bool
}

var _ Checker = &OCIClient{}

type OCIOption func(*OCIClient)

// WithTag resolves tag instead of "latest".
func WithTag(tag string) OCIOption {
	return func(c *OCIClient) {
		c.tag = tag
	}
}

// WithPlainHTTP talks to the registry without TLS.
func WithPlainHTTP(plain bool) OCIOption {
	return func(c *OCIClient) {
		c.plainHTTP = plain
	}
}

func NewOCIClient(namespace string, httpClient *http.Client, opts ...OCIOption) *OCIClient {
	c := &OCIClient{
		namespace:  strings.Trim(namespace, "/"),
		tag:        defaultTag,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reference returns the repository reference checked for name.
func (c *OCIClient) Reference(name string) string {
	return c.namespace + "/" + name
}

func (c *OCIClient) Check(ctx context.Context, name string) CheckResult {
	ref := c.Reference(name)
	repo, err := c.createRepository(ref)
	if err != nil {
		return unknown(name, err.Error())
	}

	log.WithFields(log.Fields{
		"name":      name,
		"reference": ref,
		"tag":       c.tag,
	}).Debug("resolving repository")

	desc, err := repo.Resolve(ctx, c.tag)
	switch {
	case err == nil:
		logResolved(ref, desc)
		return taken(name)
	case isNotFound(err):
		return available(name)
	default:
		log.WithError(err).WithField("reference", ref).Debug("resolve failed")
		return unknown(name, err.Error())
	}
}

func (c *OCIClient) createRepository(reference string) (*remote.Repository, error) {
	repo, err := remote.NewRepository(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	repo.PlainHTTP = c.plainHTTP
	// No credential: registries that offer anonymous pull tokens still work.
	repo.Client = &auth.Client{
		Client: c.httpClient,
		Cache:  auth.NewCache(),
	}
	return repo, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, errdef.ErrNotFound) {
		return true
	}
	var errResp *errcode.ErrorResponse
	return errors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound
}

func logResolved(ref string, desc ocispec.Descriptor) {
	log.WithFields(log.Fields{
		"reference": ref,
		"digest":    desc.Digest.String(),
		"mediaType": desc.MediaType,
	}).Debug("repository exists")
}

// SplitReference splits "host/namespace:tag" into namespace and tag. Without
// a slash the input is a bare host, possibly with a port, and has no tag.
func SplitReference(reference string) (string, string) {
	lastSlash := strings.LastIndex(reference, "/")
	if lastSlash < 0 {
		return reference, defaultTag
	}
	repo, tag, ok := strings.Cut(reference[lastSlash+1:], ":")
	return lo.Ternary(ok, reference[:lastSlash+1]+repo, reference), lo.Ternary(ok, tag, defaultTag)
}
