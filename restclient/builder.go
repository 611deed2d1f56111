// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/url"
	"strings"

	"github.com/meridian-labs/go-meridian/meridian"
)

// RequestURI assembles one request URI from a base URI, an ordered
// list of path segments, and an ordered list of query fragments.
//
// The builder is a value object for a single request: build it, render
// it with Get(), and discard it.  It must not be shared between
// concurrent callers.
//
// Every mutating call returns the builder so calls can be chained.  A
// builder that was not obtained from NewRequestURI (for instance, a
// zero value) records meridian.ErrNotConstructed on first use, and
// Get() reports it.
type RequestURI struct {
	base        string
	path        []string
	query       []string
	constructed bool
	err         error
}

// NewRequestURI creates a builder for the given base URI, appending
// any initial path segments.  The base is normalized to end in exactly
// one "/".  Returns meridian.ErrMissingBaseURI if base is empty.
func NewRequestURI(base string, segments ...string) (*RequestURI, error) {
	if base == "" {
		return nil, meridian.ErrMissingBaseURI
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u := &RequestURI{base: base, constructed: true}
	for _, segment := range segments {
		u.AddPath(segment)
	}
	return u, nil
}

// AddPath appends one path segment.  Empty segments are dropped, never
// inserted as empty URI components.  Segments are percent-escaped when
// the URI is rendered, so a segment must not itself contain "/".
func (u *RequestURI) AddPath(segment string) *RequestURI {
	if !u.constructed {
		u.err = meridian.ErrNotConstructed
		return u
	}
	if segment == "" {
		return u
	}
	u.path = append(u.path, segment)
	return u
}

// AddRawQuery appends one pre-formatted query fragment, typically
// "name=value" or a bare flag name.  The fragment must already be
// escaped.  Empty fragments are dropped.  The builder supplies the
// join character: the first fragment is stored with a leading "?",
// every later one with a leading "&".
func (u *RequestURI) AddRawQuery(fragment string) *RequestURI {
	if !u.constructed {
		u.err = meridian.ErrNotConstructed
		return u
	}
	if fragment == "" {
		return u
	}
	if len(u.query) == 0 {
		fragment = "?" + fragment
	} else {
		fragment = "&" + fragment
	}
	u.query = append(u.query, fragment)
	return u
}

// AddQuery formats and appends one query parameter.  An empty name is
// dropped.  An empty value appends the bare name, supporting flag
// parameters.  The value is query-escaped.
func (u *RequestURI) AddQuery(name, value string) *RequestURI {
	if name == "" {
		return u
	}
	if value == "" {
		return u.AddRawQuery(name)
	}
	return u.AddRawQuery(name + "=" + url.QueryEscape(value))
}

// Err returns the first error recorded by any earlier call in the
// chain, if any.
func (u *RequestURI) Err() error {
	return u.err
}

// Get renders the URI: the base, the path segments joined with "/",
// and the query fragments concatenated in order.
func (u *RequestURI) Get() (string, error) {
	if !u.constructed {
		return "", meridian.ErrNotConstructed
	}
	if u.err != nil {
		return "", u.err
	}
	segments := make([]string, len(u.path))
	for i, segment := range u.path {
		segments[i] = url.PathEscape(segment)
	}
	return u.base + strings.Join(segments, "/") + strings.Join(u.query, ""), nil
}
