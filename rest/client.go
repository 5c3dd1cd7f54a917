package rest

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/serializer"
	"github.com/kbukum/restkit/transport"
)

const tracerName = "github.com/kbukum/restkit/rest"

// Transport executes one HTTP exchange. *transport.Client satisfies it;
// tests substitute fakes.
type Transport interface {
	Send(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// Client dispatches declarative REST calls: it owns the base URL, the
// serializer, and the per-instance error handler table. Routes are bound
// and dispatched through it.
//
// The handler table and the routes a client uses are effectively immutable
// after setup; sharing a Client across goroutines is safe as long as
// RegisterErrorHandler is not called concurrently with dispatches.
type Client struct {
	baseURL   string
	transport Transport
	ser       serializer.Serializer
	handlers  map[handlerKey]ErrorHandler
	log       *logger.Logger
	tracer    trace.Tracer
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithSerializer replaces the default JSON serializer.
func WithSerializer(s serializer.Serializer) Option {
	return func(c *Client) { c.ser = s }
}

// WithTransport replaces the transport built from Config.Transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger replaces the default logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client. Trailing slashes are stripped from the base URL
// once, here; the handler table is seeded with the default wildcard 404
// entry.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		ser:     &serializer.JSON{},
		handlers: map[handlerKey]ErrorHandler{
			{verb: VerbAny, status: 404}: handleNotFound,
		},
		log:    logger.Get("rest"),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		t, err := transport.New(cfg.Transport)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}

	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call binds args against the route and dispatches: the body parameter, if
// bound, is dumped through the serializer; the response body is loaded into
// T. Serialization failures propagate unchanged.
func Call[T any](ctx context.Context, c *Client, r *Route, args Args) (T, error) {
	var zero T

	bound, err := r.bind(args, c.ser)
	if err != nil {
		return zero, err
	}

	var body any
	if bound.hasBody {
		body, err = c.ser.Dump(bound.body)
		if err != nil {
			return zero, err
		}
	}

	return Do[T](ctx, c, r.verb, bound.path, bound.query, body)
}

// Do dispatches one request and loads the response body into T. Use T=any
// for the raw parsed JSON.
func Do[T any](ctx context.Context, c *Client, verb Verb, path string, query map[string]string, body any) (T, error) {
	var out T

	raw, err := c.Request(ctx, verb, path, query, body)
	if err != nil {
		return out, err
	}
	if err := c.ser.Load(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Request dispatches one request and returns the raw parsed JSON body.
//
// Transport-level failures surface as APIError("RequestException") wrapping
// the cause; non-2xx responses go through the error handler table; a 2xx
// response whose body is not valid JSON surfaces as APIError("Cannot decode
// response").
func (c *Client) Request(ctx context.Context, verb Verb, path string, query map[string]string, body any) (any, error) {
	url := c.baseURL + "/" + path

	ctx, span := c.tracer.Start(ctx, "rest.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", string(verb)),
			attribute.String("url.full", url),
		),
	)
	defer span.End()

	c.log.Debug("sending request", logger.Fields("method", string(verb), "url", url))

	resp, err := c.transport.Send(ctx, transport.Request{
		Method: string(verb),
		URL:    url,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		apiErr := &APIError{Message: "RequestException", Cause: err}
		c.log.Error("request failed", logger.Fields("url", url, "error", err.Error()))
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, "RequestException")
		return nil, apiErr
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if !resp.IsSuccess() {
		herr := c.handleError(verb, resp)
		span.SetStatus(codes.Error, herr.Error())
		return nil, herr
	}

	raw, err := resp.JSON()
	if err != nil {
		apiErr := &APIError{Message: "Cannot decode response", Cause: err}
		c.log.Error("cannot decode response", logger.Fields("url", url, "error", err.Error()))
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, "Cannot decode response")
		return nil, apiErr
	}

	return raw, nil
}

// Get dispatches an untyped GET request.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) (any, error) {
	return c.Request(ctx, VerbGet, path, query, nil)
}

// Delete dispatches an untyped DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query map[string]string) (any, error) {
	return c.Request(ctx, VerbDelete, path, query, nil)
}

// Post dispatches an untyped POST request.
func (c *Client) Post(ctx context.Context, path string, query map[string]string, body any) (any, error) {
	return c.Request(ctx, VerbPost, path, query, body)
}

// Put dispatches an untyped PUT request.
func (c *Client) Put(ctx context.Context, path string, query map[string]string, body any) (any, error) {
	return c.Request(ctx, VerbPut, path, query, body)
}

// Patch dispatches an untyped PATCH request.
func (c *Client) Patch(ctx context.Context, path string, query map[string]string, body any) (any, error) {
	return c.Request(ctx, VerbPatch, path, query, body)
}
