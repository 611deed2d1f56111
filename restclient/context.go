// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient implements a client for the Meridian content
// API.  A Context carries the resolved configuration for one endpoint
// and credential; from it, callers build request URIs (RequestURI,
// ResourceURI) and reach the typed call sites (Items, Singleton,
// Files).
package restclient

import (
	"net/http"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/meridian-labs/go-meridian/meridian"
	"github.com/sirupsen/logrus"
)

// Version is the client version reported in the User-Agent header.
const Version = "0.3.0"

// Config supplies the parameters for a Context.  URL is required;
// everything else has a usable default.
type Config struct {
	// URL is the root of the API, e.g. "https://api.example.com/".
	URL string

	// Token is the bearer token presented on every request.  If
	// empty, requests are sent unauthenticated.
	Token string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Resources overrides or extends the default resource-path
	// table, keyed by Resource.Name.
	Resources []meridian.Resource

	// Logger receives diagnostic output.  If nil, the standard
	// logrus logger is used.
	Logger logrus.FieldLogger

	// Clock is the time source used to measure request latency.
	// Only test code should need to set this.
	Clock clock.Clock

	// HTTPClient performs the requests.  If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client
}

// Context holds the resolved client configuration: the normalized base
// URL, the derived header set, and the resource-path table.  It is
// immutable after construction and safe to share; the builders it
// creates are not.
type Context struct {
	baseURL   string
	headers   map[string]string
	resources map[string]meridian.Resource
	logger    logrus.FieldLogger
	clock     clock.Clock
	client    *http.Client
}

// New creates a Context.  Returns meridian.ErrMissingBaseURI if no URL
// was provided.
func New(cfg Config) (*Context, error) {
	if cfg.URL == "" {
		return nil, meridian.ErrMissingBaseURI
	}
	baseURL := cfg.URL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "go-meridian/" + Version
	}
	headers := map[string]string{"User-Agent": userAgent}
	if cfg.Token != "" {
		headers["Authorization"] = "Bearer " + cfg.Token
	}

	resources := meridian.DefaultResources()
	for _, resource := range cfg.Resources {
		resources[resource.Name] = resource
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Context{
		baseURL:   baseURL,
		headers:   headers,
		resources: resources,
		logger:    logger,
		clock:     clk,
		client:    client,
	}, nil
}

// BaseURL returns the normalized API root, always ending in "/".
func (c *Context) BaseURL() string {
	return c.baseURL
}

// Headers returns a copy of the headers sent on every request.
func (c *Context) Headers() map[string]string {
	headers := make(map[string]string, len(c.headers))
	for name, value := range c.headers {
		headers[name] = value
	}
	return headers
}

// Resource looks up a resource descriptor by logical name.
func (c *Context) Resource(name string) (meridian.Resource, error) {
	resource, ok := c.resources[name]
	if !ok {
		return meridian.Resource{}, meridian.ErrNoSuchResource{Name: name}
	}
	return resource, nil
}

// URIBuilder creates a ResourceURI rooted at the named resource's
// path.  If the resource is not implemented by this client, a warning
// is logged, but the builder is returned anyway.
func (c *Context) URIBuilder(name string) (*ResourceURI, error) {
	resource, err := c.Resource(name)
	if err != nil {
		return nil, err
	}
	if !resource.Implemented {
		c.logger.WithField("resource", resource.Name).
			Warn("Resource is not implemented by this client")
	}
	return NewResourceURI(c.baseURL, resource.Path)
}
