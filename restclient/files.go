// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/jtacoma/uritemplates"
	"github.com/meridian-labs/go-meridian/meridian"
	"github.com/meridian-labs/go-meridian/restdata"
	"github.com/satori/go.uuid"
)

// Files provides access to the binary file/asset subsystem.
type Files struct {
	ctx *Context
}

// Files returns the call sites for the file subsystem.
func (c *Context) Files() *Files {
	return &Files{ctx: c}
}

func (f *Files) uri(q *meridian.Query, segments ...string) (string, error) {
	b, err := f.ctx.URIBuilder(meridian.ResourceFiles)
	if err != nil {
		return "", err
	}
	for _, segment := range segments {
		b.AddPath(segment)
	}
	if q != nil {
		b.ApplyQuery(*q)
	}
	return b.Get()
}

// List retrieves the file entries matching q.
func (f *Files) List(q *meridian.Query) ([]restdata.File, error) {
	uri, err := f.uri(q)
	if err != nil {
		return nil, err
	}
	var files []restdata.File
	err = f.ctx.get(uri, &files)
	return files, err
}

// Get retrieves one file entry by ID.
func (f *Files) Get(id string) (restdata.File, error) {
	var file restdata.File
	uri, err := f.uri(nil, id)
	if err == nil {
		err = f.ctx.get(uri, &file)
	}
	return file, err
}

// Upload stores a new file from content and returns its entry.
// filename is the name recorded for the stored file.
func (f *Files) Upload(filename string, content io.Reader) (restdata.File, error) {
	var file restdata.File
	uri, err := f.uri(nil)
	if err != nil {
		return file, err
	}
	body, contentType, err := multipartBody("file", filename, content)
	if err == nil {
		err = f.ctx.doBody("POST", uri, body, contentType, &file)
	}
	return file, err
}

// Delete removes one file entry and its stored content.
func (f *Files) Delete(id string) error {
	uri, err := f.uri(nil, id)
	if err != nil {
		return err
	}
	return f.ctx.delete(uri)
}

// multipartBody builds a multipart/form-data request body holding one
// file part.  It returns the body and the Content-Type header value
// carrying the boundary token.
func multipartBody(field, filename string, content io.Reader) (io.Reader, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	err := writer.SetBoundary("meridian-" + uuid.NewV4().String())
	if err != nil {
		return nil, "", err
	}
	part, err := writer.CreateFormFile(field, filename)
	if err == nil {
		_, err = io.Copy(part, content)
	}
	err = firstError(err, writer.Close())
	if err != nil {
		return nil, "", err
	}
	return &buffer, writer.FormDataContentType(), nil
}

// assetTemplate addresses the binary payload of one file, with the
// optional transform parameters the server understands: an access key,
// width, height, and quality.
const assetTemplate = "{id}{?key,w,h,q}"

// AssetURL renders a download URL for a file's binary payload.
// params, if non-nil, may carry the "key", "w", "h", and "q" transform
// parameters; unknown parameters are ignored by the template.
func (c *Context) AssetURL(id string, params map[string]interface{}) (string, error) {
	resource, err := c.Resource(meridian.ResourceAssets)
	if err != nil {
		return "", err
	}
	template, err := uritemplates.Parse(c.baseURL + resource.Path + "/" + assetTemplate)
	if err != nil {
		return "", err
	}
	vars := map[string]interface{}{"id": id}
	for name, value := range params {
		if name != "id" {
			vars[name] = value
		}
	}
	return template.Expand(vars)
}
