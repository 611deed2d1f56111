// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides the generic HTTP layer.  All of the typed call
// sites funnel through Context.do(): serialize the body, send the
// request, check the status, and unwrap the {"data": ...} envelope.

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/meridian-labs/go-meridian/restdata"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// do performs an HTTP action against a rendered URI.  If in is
// non-nil, it is serialized as the JSON request body.  If out is
// non-nil, the "data" field of the response envelope is decoded into
// it; out must be a pointer type.
func (c *Context) do(method, uri string, in, out interface{}) (err error) {
	var body io.Reader
	contentType := ""
	if in != nil {
		json := &codec.JsonHandle{}
		var encoded []byte
		encoder := codec.NewEncoderBytes(&encoded, json)
		if err = encoder.Encode(in); err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
		contentType = restdata.JSONMediaType
	}
	return c.doBody(method, uri, body, contentType, out)
}

// doBody is the raw-body variant of do, used directly for multipart
// uploads.  contentType may be empty when body is nil.
func (c *Context) doBody(method, uri string, body io.Reader, contentType string, out interface{}) (err error) {
	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return err
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	req.Header.Set("X-Request-Id", uuid.NewV4().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.JSONMediaType)
	}

	start := c.clock.Now()
	resp, err := c.client.Do(req)
	elapsed := c.clock.Now().Sub(start)
	if err != nil {
		requestCount.With(prometheusLabels(method, "error")).Inc()
		return err
	}

	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	requestCount.With(prometheusLabels(method, resp.Status)).Inc()
	requestLatency.WithLabelValues(method).Observe(elapsed.Seconds())
	c.logger.WithFields(logrus.Fields{
		"method":  method,
		"status":  resp.Status,
		"elapsed": elapsed,
	}).Debug("Request complete")

	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	if out != nil && resp.Body != nil && resp.StatusCode != http.StatusNoContent {
		envelope := restdata.Envelope{}
		responseType := resp.Header.Get("Content-Type")
		err = restdata.Decode(responseType, resp.Body, &envelope)
		if err == nil {
			err = restdata.DecodeData(envelope.Data, out)
		}
	}

	return err // may be nil
}

// get retrieves a resource and decodes its envelope payload into out.
func (c *Context) get(uri string, out interface{}) error {
	return c.do("GET", uri, nil, out)
}

// post submits data to a resource.
func (c *Context) post(uri string, in, out interface{}) error {
	return c.do("POST", uri, in, out)
}

// patch partially updates a resource; fields absent from in remain
// unchanged on the server.
func (c *Context) patch(uri string, in, out interface{}) error {
	return c.do("PATCH", uri, in, out)
}

// delete removes a resource.
func (c *Context) delete(uri string) error {
	return c.do("DELETE", uri, nil, nil)
}

// ErrorHTTP is a catch-all error for non-successes that did not carry
// a decodable error response.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a server-provided error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err2 := restdata.Decode(contentType, bytes.NewReader(body), &errResp)
	if err2 == nil && errResp.Error.Message != "" {
		return errResp.ToError()
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
