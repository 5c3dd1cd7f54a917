// Package rest builds REST API clients declaratively: a route declaration
// (URL template, verb, named parameters, body designation) is compiled once
// into an immutable descriptor, and every call binds named arguments against
// it — path placeholders are substituted, the rest of the arguments become
// query parameters or the JSON body, and the response is decoded into the
// declared result type.
//
// # Declaring routes
//
//	var (
//	    getCat  = rest.Must(rest.Get("cats/{id}", rest.WithParams("id")))
//	    listCats = rest.Must(rest.Get("cats", rest.WithParams("limit", "offset")))
//	    saveCat = rest.Must(rest.Put("cats/{id}", rest.WithParams("id", "body")))
//	)
//
// Route declarations are validated eagerly: a placeholder without a declared
// parameter, or a body designation colliding with a placeholder, fails with
// *RouteError before any request is made. GET and DELETE routes carry no
// body; POST, PUT, and PATCH consume the parameter named "body" when
// declared (override with WithBodyParam).
//
// # Calling
//
//	client, err := rest.New(rest.Config{BaseURL: "https://api.example.com"})
//
//	cat, err := rest.Call[Cat](ctx, client, getCat, rest.Args{"id": 7})
//	cats, err := rest.Call[[]Cat](ctx, client, listCats, rest.Args{"limit": 10})
//	saved, err := rest.Call[Cat](ctx, client, saveCat, rest.Args{"id": 7, "body": cat})
//
// Arguments bound to placeholders are consumed by the path; the body
// argument becomes the JSON request body; everything else is serialized
// into the query string (nil values are dropped).
//
// # Errors
//
// Non-2xx responses route through a per-client (verb, status) handler table.
// An exact (verb, status) entry wins over the (VerbAny, status) wildcard,
// which wins over the base *APIError fallback. The table is seeded with a
// wildcard 404 entry producing *NotFoundError:
//
//	client.RegisterErrorHandler(rest.VerbGet, 409, func(resp *transport.Response) error {
//	    return &ConflictError{}
//	})
//
// Transport-level failures (connection refused, timeouts) surface as
// *APIError with message "RequestException" wrapping the cause; they are
// never retried at this layer (configure retries on the transport). A 2xx
// response whose body is not valid JSON — including an empty body, as with
// 204 No Content — surfaces as *APIError with message "Cannot decode
// response"; register a handler or use the untyped Request variants for
// endpoints that return no body.
package rest
