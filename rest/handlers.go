package rest

import (
	"github.com/kbukum/restkit/transport"
)

// ErrorHandler turns a non-2xx response into the error surfaced to the
// caller. Handlers never produce a value: returning nil means "unhandled"
// and lookup falls through to the next entry — the wildcard for an exact
// handler, the base APIError for the wildcard.
type ErrorHandler func(resp *transport.Response) error

// handlerKey addresses one entry of the error handler table. The zero verb
// (VerbAny) is the wildcard.
type handlerKey struct {
	verb   Verb
	status int
}

// RegisterErrorHandler maps a (verb, status) pair to a handler. VerbAny
// registers a wildcard entry matched only when no exact verb entry exists.
// Later registrations for the same pair overwrite earlier ones.
//
// The table is read without locking on every dispatch; registration after
// the client starts serving concurrent callers must be synchronized by the
// caller.
func (c *Client) RegisterErrorHandler(verb Verb, status int, h ErrorHandler) {
	c.handlers[handlerKey{verb: verb, status: status}] = h
}

// UnregisterErrorHandler removes the handler for a (verb, status) pair.
// Lookup then falls through to the wildcard entry and finally to the base
// APIError.
func (c *Client) UnregisterErrorHandler(verb Verb, status int) {
	delete(c.handlers, handlerKey{verb: verb, status: status})
}

// handleError selects and runs the handler for a failed response: exact
// (verb, status) first, then the (VerbAny, status) wildcard, then the base
// APIError carrying a rendering of the response. A handler returning nil
// declines the response; lookup continues down the same order.
func (c *Client) handleError(verb Verb, resp *transport.Response) error {
	if h, ok := c.handlers[handlerKey{verb: verb, status: resp.StatusCode}]; ok && h != nil {
		if err := h(resp); err != nil {
			return err
		}
	}
	if h, ok := c.handlers[handlerKey{verb: VerbAny, status: resp.StatusCode}]; ok && h != nil {
		if err := h(resp); err != nil {
			return err
		}
	}
	return &APIError{Message: "unexpected response: " + resp.String(), Status: resp.StatusCode}
}

// handleNotFound is the default wildcard handler for HTTP 404.
func handleNotFound(resp *transport.Response) error {
	return &NotFoundError{APIError{Message: "not found", Status: resp.StatusCode}}
}
