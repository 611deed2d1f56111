// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/meridian-labs/go-meridian/filter"
	"github.com/meridian-labs/go-meridian/meridian"
)

// ResourceURI builds request URIs for one API resource.  It extends
// RequestURI with a helper per standard query parameter; each helper
// validates and formats one value, delegates to the generic query
// appender, and returns the builder for chaining.  Every helper is a
// no-op when its argument is empty or invalid.
type ResourceURI struct {
	RequestURI
}

// NewResourceURI creates a resource builder for the given base URI and
// initial path segments.  Returns meridian.ErrMissingBaseURI if base
// is empty.
func NewResourceURI(base string, segments ...string) (*ResourceURI, error) {
	u := &ResourceURI{}
	inner, err := NewRequestURI(base, segments...)
	if err != nil {
		return nil, err
	}
	u.RequestURI = *inner
	return u, nil
}

// AddPath appends one path segment.  See RequestURI.AddPath.
func (u *ResourceURI) AddPath(segment string) *ResourceURI {
	u.RequestURI.AddPath(segment)
	return u
}

// AddFields requests only the named item fields, comma-joined.
func (u *ResourceURI) AddFields(fields []string) *ResourceURI {
	return u.addList("fields", fields)
}

// AddFilter appends a serialized filter expression.  A nil or empty
// expression is dropped; an expression carrying a validation error
// poisons the builder so Get() reports it.
func (u *ResourceURI) AddFilter(expr *filter.Expression) *ResourceURI {
	if expr == nil {
		return u
	}
	// Check the error before emptiness: a validation failure can
	// happen before any clause is stored, and it must still poison
	// the builder rather than send the request unfiltered.
	if expr.Err != nil {
		if u.err == nil {
			u.err = expr.Err
		}
		return u
	}
	if expr.Len() == 0 {
		return u
	}
	u.AddQuery("filter", expr.Get())
	return u
}

// AddSearch appends a free-text search term.
func (u *ResourceURI) AddSearch(term string) *ResourceURI {
	if term == "" {
		return u
	}
	u.AddQuery("search", term)
	return u
}

// AddSort appends the sort field list, comma-joined.  The caller
// prefixes a field with "-" for descending order.
func (u *ResourceURI) AddSort(fields []string) *ResourceURI {
	return u.addList("sort", fields)
}

// AddLimit caps the number of results.  n must parse as a
// non-negative integer or the call is a no-op.
func (u *ResourceURI) AddLimit(n string) *ResourceURI {
	return u.addNumber("limit", n)
}

// AddOffset skips results from the start.  Same validation as
// AddLimit.
func (u *ResourceURI) AddOffset(n string) *ResourceURI {
	return u.addNumber("offset", n)
}

// AddPage selects a page of results.  Same validation as AddLimit.
func (u *ResourceURI) AddPage(n string) *ResourceURI {
	return u.addNumber("page", n)
}

// AddVersion selects a content version.
func (u *ResourceURI) AddVersion(v string) *ResourceURI {
	if v == "" {
		return u
	}
	u.AddQuery("version", v)
	return u
}

// addList appends name=a,b,c with each element escaped individually,
// keeping the commas literal.
func (u *ResourceURI) addList(name string, values []string) *ResourceURI {
	if len(values) == 0 {
		return u
	}
	escaped := make([]string, len(values))
	for i, value := range values {
		escaped[i] = url.QueryEscape(value)
	}
	u.AddRawQuery(name + "=" + strings.Join(escaped, ","))
	return u
}

// addNumber appends name=n if n is a non-negative integer, and drops
// the parameter otherwise.
func (u *ResourceURI) addNumber(name, n string) *ResourceURI {
	if n == "" {
		return u
	}
	value, err := strconv.Atoi(n)
	if err != nil || value < 0 {
		return u
	}
	u.AddRawQuery(name + "=" + strconv.Itoa(value))
	return u
}

// ApplyQuery appends every parameter set in q.
func (u *ResourceURI) ApplyQuery(q meridian.Query) *ResourceURI {
	return u.AddFields(q.Fields).
		AddFilter(q.Filter).
		AddSearch(q.Search).
		AddSort(q.Sort).
		AddLimit(q.Limit).
		AddOffset(q.Offset).
		AddPage(q.Page).
		AddVersion(q.Version)
}
