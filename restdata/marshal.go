// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/mitchellh/mapstructure"
	"github.com/ugorji/go/codec"
)

// Decode decodes a restdata object from a reader, such as an HTTP
// request or response body.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", JSONMediaType:
		json := &codec.JsonHandle{}
		decoder := codec.NewDecoder(r, json)
		return decoder.Decode(out)
	}
	return ErrUnsupportedMediaType{Type: mediaType}
}

// DecodeData converts a decoded envelope payload (a generic map, or a
// list of them) into a typed value.  out must be a pointer type.
// Field names are matched by their json tags, and scalar types are
// converted loosely, so a numeric ID decodes into a string field.
func DecodeData(data, out interface{}) error {
	config := mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(data)
	}
	return err
}
