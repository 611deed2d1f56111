// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package meridian

import (
	"errors"
	"fmt"
)

// ErrMissingBaseURI is returned when a URI builder or a client context
// is constructed without a base URI.
var ErrMissingBaseURI = errors.New("No base URI provided")

// ErrNotConstructed is returned from any operation on a URI builder
// that has not been constructed with a base URI.  This is a caller
// bug; the call must be fixed, not retried.
var ErrNotConstructed = errors.New("URI builder has not been constructed")

// ErrNoSuchResource is returned when looking up a resource name that
// is not in the client's resource-path table.
type ErrNoSuchResource struct {
	Name string
}

func (err ErrNoSuchResource) Error() string {
	return fmt.Sprintf("No such resource %v", err.Name)
}
