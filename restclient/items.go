// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/meridian-labs/go-meridian/meridian"
	"github.com/meridian-labs/go-meridian/restdata"
)

// Items provides access to the documents of one named collection.
type Items struct {
	ctx        *Context
	collection string
}

// Items returns the call sites for one collection.
func (c *Context) Items(collection string) *Items {
	return &Items{ctx: c, collection: collection}
}

// uri builds the request URI for this collection, with optional extra
// path segments and query parameters.
func (it *Items) uri(q *meridian.Query, segments ...string) (string, error) {
	b, err := it.ctx.URIBuilder(meridian.ResourceItems)
	if err != nil {
		return "", err
	}
	b.AddPath(it.collection)
	for _, segment := range segments {
		b.AddPath(segment)
	}
	if q != nil {
		b.ApplyQuery(*q)
	}
	return b.Get()
}

// List retrieves the items matching q.  A nil q retrieves everything
// with the server's defaults.
func (it *Items) List(q *meridian.Query) ([]restdata.Record, error) {
	uri, err := it.uri(q)
	if err != nil {
		return nil, err
	}
	var records []restdata.Record
	err = it.ctx.get(uri, &records)
	return records, err
}

// Get retrieves one item by ID.  q may narrow the returned fields or
// select a version; filters do not apply to single-item reads.
func (it *Items) Get(id string, q *meridian.Query) (restdata.Record, error) {
	uri, err := it.uri(q, id)
	if err != nil {
		return nil, err
	}
	var record restdata.Record
	err = it.ctx.get(uri, &record)
	return record, err
}

// Create submits a new item and returns the server's representation
// of it.
func (it *Items) Create(data restdata.Record) (restdata.Record, error) {
	uri, err := it.uri(nil)
	if err != nil {
		return nil, err
	}
	var record restdata.Record
	err = it.ctx.post(uri, data, &record)
	return record, err
}

// Update applies a partial update to one item.  Fields absent from
// data remain unchanged.
func (it *Items) Update(id string, data restdata.Record) (restdata.Record, error) {
	uri, err := it.uri(nil, id)
	if err != nil {
		return nil, err
	}
	var record restdata.Record
	err = it.ctx.patch(uri, data, &record)
	return record, err
}

// Delete removes one item.
func (it *Items) Delete(id string) error {
	uri, err := it.uri(nil, id)
	if err != nil {
		return err
	}
	return it.ctx.delete(uri)
}

// Singleton provides access to a collection holding exactly one
// implicit item, addressed without an ID.
type Singleton struct {
	ctx        *Context
	collection string
}

// Singleton returns the call sites for a singleton collection.
func (c *Context) Singleton(collection string) *Singleton {
	return &Singleton{ctx: c, collection: collection}
}

func (s *Singleton) uri(q *meridian.Query) (string, error) {
	b, err := s.ctx.URIBuilder(meridian.ResourceItems)
	if err != nil {
		return "", err
	}
	b.AddPath(s.collection)
	if q != nil {
		b.ApplyQuery(*q)
	}
	return b.Get()
}

// Get retrieves the singleton item.
func (s *Singleton) Get(q *meridian.Query) (restdata.Record, error) {
	uri, err := s.uri(q)
	if err != nil {
		return nil, err
	}
	var record restdata.Record
	err = s.ctx.get(uri, &record)
	return record, err
}

// Update applies a partial update to the singleton item.
func (s *Singleton) Update(data restdata.Record) (restdata.Record, error) {
	uri, err := s.uri(nil)
	if err != nil {
		return nil, err
	}
	var record restdata.Record
	err = s.ctx.patch(uri, data, &record)
	return record, err
}
