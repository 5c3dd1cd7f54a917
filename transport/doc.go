// Package transport executes single HTTP request/response exchanges for the
// rest client. It owns everything below the dispatch layer: URL and query
// assembly, header and credential injection, TLS, request IDs, and the
// resilience policies (retry, circuit breaker, rate limiting) the dispatch
// layer deliberately does not manage.
//
// The transport does not interpret response status codes; a non-2xx response
// is returned to the caller untouched so the rest error router can classify
// it. Only network-level failures (connection errors, timeouts) surface as
// *Error.
//
//	t, err := transport.New(transport.Config{
//	    Timeout: 10 * time.Second,
//	    Auth:    transport.BearerAuth("token"),
//	    Retry:   transport.DefaultRetryConfig(),
//	})
//
//	resp, err := t.Send(ctx, transport.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/cats/7",
//	})
package transport
