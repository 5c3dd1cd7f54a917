package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Request describes one outbound HTTP exchange.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is the full request URL. The transport does no base-URL joining;
	// callers compose the URL before handing the request over.
	URL string
	// Query are URL query parameters, appended to the URL.
	Query map[string]string
	// Headers are request-specific headers (merged over transport defaults).
	Headers map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded. Nil sends no body.
	Body any
	// Auth overrides the transport-level auth for this request.
	Auth *AuthConfig
}

// Response is the result of an HTTP exchange that reached the server.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// JSON parses the response body as JSON. Numbers decode as json.Number so
// integers beyond float64 precision survive intact. A parse failure here is
// distinguishable from connection-level failures, which surface from Send.
func (r *Response) JSON() (any, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("transport: decode response body: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("transport: decode response body: trailing data after JSON value")
	}
	return v, nil
}

// String renders the response for diagnostics, truncating long bodies.
func (r *Response) String() string {
	const maxBody = 256
	body := string(r.Body)
	if len(body) > maxBody {
		body = body[:maxBody] + "..."
	}
	return fmt.Sprintf("HTTP %d: %s", r.StatusCode, body)
}
