// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures a Meridian API server
// sends and receives.  JSON encodings of these are passed across the
// wire as application/json.
//
// Every successful response wraps its payload in an envelope with a
// single "data" field:
//
//	{"data": {"id": 42, "status": "published"}}
//
// Collection reads return a list under the same key.  Failing
// responses carry an "error" object with a numeric code and a
// human-readable message, alongside a failing HTTP status.
//
// Item documents have no fixed schema; they are conveyed as generic
// field maps (Record).  DecodeData converts a decoded payload into a
// typed struct for callers that know their collection's shape.
package restdata

// JSONMediaType is the media type for all request and response bodies.
const JSONMediaType = "application/json"

// Record is one item document as a generic field map.  The field set
// is determined by the collection the item belongs to.
type Record map[string]interface{}

// Envelope is the standard response wrapper.  Data holds the payload;
// its concrete shape depends on the request (one record, a list of
// records, a file, ...).  Meta carries optional collection metadata
// such as result counts.
type Envelope struct {
	Data interface{} `json:"data"`
	Meta Record      `json:"meta,omitempty"`
}

// File describes one entry in the file/asset subsystem.
type File struct {
	// ID identifies the file.  File IDs appear as URL path
	// segments, so they are carried as strings.
	ID string `json:"id"`

	// Name is the stored file name.
	Name string `json:"filename"`

	// Title is a human-readable title, if one was set.
	Title string `json:"title,omitempty"`

	// Type is the MIME type of the stored content.
	Type string `json:"type"`

	// Size is the stored content length in bytes.
	Size int64 `json:"filesize"`

	// URL points at the binary payload, when the server exposes
	// a direct link.
	URL string `json:"url,omitempty"`
}

// ErrorResponse can be the body of any failing response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the server's description of a failure.
type ErrorDetail struct {
	// Code is a server-defined error code, not an HTTP status.
	Code int `json:"code"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}
