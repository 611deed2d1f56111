// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ToError converts a decoded error response into an error value.
func (e *ErrorResponse) ToError() error {
	if e.Error.Message == "" {
		return errors.New("Unknown server error")
	}
	if e.Error.Code != 0 {
		return fmt.Errorf("%v (code %v)", e.Error.Message, e.Error.Code)
	}
	return errors.New(e.Error.Message)
}
