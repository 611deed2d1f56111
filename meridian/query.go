// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package meridian

import (
	"github.com/meridian-labs/go-meridian/filter"
)

// Query collects the optional parameters of a read request.  The zero
// value asks for everything with the server's defaults; unset fields
// are simply left off the request URI.
//
// Limit, Offset, and Page are carried as strings and must parse as
// non-negative integers, or they are ignored.
type Query struct {
	// Fields names the item fields to return.  Empty means all.
	Fields []string

	// Filter restricts the result set.  See the filter package
	// for the constraint grammar.
	Filter *filter.Expression

	// Search is a free-text search term applied across fields.
	Search string

	// Sort lists the fields to order by.  Prefix a field name
	// with "-" for descending order.
	Sort []string

	// Limit caps the number of items returned.
	Limit string

	// Offset skips that many items from the start of the result.
	Offset string

	// Page selects a page of Limit-sized results, starting at 1.
	Page string

	// Version selects a specific content version, where the
	// server supports versioned items.
	Version string
}
