// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

// Package meridian defines the shared vocabulary for the Meridian
// content API: the logical resources the API exposes, the query
// options a request can carry, and the errors common to the client
// packages.
//
// The Meridian API organizes documents into named collections.  Each
// document is an item; a collection may also be a singleton with
// exactly one implicit item.  Binary payloads live in a separate
// file/asset subsystem.  All of these are addressed by a fixed URL
// path segment per resource, listed in the resource table here.
package meridian

// Resource describes one logical API resource: the name client code
// refers to it by, the URL path segment it lives under, and whether
// this client actually implements calls against it.  Unimplemented
// resources can still be addressed; the client only emits a warning.
type Resource struct {
	// Name is the logical resource name, e.g. "Items".
	Name string

	// Path is the URL path segment for the resource, e.g. "items".
	Path string

	// Implemented reports whether this client has typed call
	// sites for the resource.  It never blocks a request.
	Implemented bool
}

// Names of the standard resources, usable as keys into the table
// returned by DefaultResources().
const (
	ResourceActivity    = "Activity"
	ResourceAssets      = "Assets"
	ResourceCollections = "Collections"
	ResourceFiles       = "Files"
	ResourceItems       = "Items"
	ResourceSettings    = "Settings"
)

// DefaultResources returns the standard resource-path table.  Callers
// may override individual entries, or add their own, through the
// client configuration.
func DefaultResources() map[string]Resource {
	return map[string]Resource{
		ResourceActivity:    {Name: ResourceActivity, Path: "activity", Implemented: false},
		ResourceAssets:      {Name: ResourceAssets, Path: "assets", Implemented: true},
		ResourceCollections: {Name: ResourceCollections, Path: "collections", Implemented: false},
		ResourceFiles:       {Name: ResourceFiles, Path: "files", Implemented: true},
		ResourceItems:       {Name: ResourceItems, Path: "items", Implemented: true},
		ResourceSettings:    {Name: ResourceSettings, Path: "settings", Implemented: false},
	}
}
