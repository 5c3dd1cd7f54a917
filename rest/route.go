package rest

import (
	"fmt"
	"net/http"
	"strings"
)

// Verb is an HTTP method. VerbAny is only meaningful as the wildcard key of
// the error handler table.
type Verb string

const (
	// VerbAny matches any verb in the error handler table.
	VerbAny Verb = ""

	VerbGet    Verb = http.MethodGet
	VerbPost   Verb = http.MethodPost
	VerbPut    Verb = http.MethodPut
	VerbPatch  Verb = http.MethodPatch
	VerbDelete Verb = http.MethodDelete
)

// Param declares one named parameter of a route.
type Param struct {
	// Name is the parameter name, matching template placeholders, query
	// keys, and the body designation.
	Name string
	// Required makes binding fail when no argument and no default is
	// supplied. Template placeholders are always required regardless.
	Required bool
	// Default is bound when the caller omits the argument. Nil means no
	// default.
	Default any
}

// chunk is one compiled piece of a URL template: either literal text or a
// placeholder to substitute at bind time.
type chunk struct {
	text        string
	placeholder bool
}

// Route is the compiled, immutable descriptor of one declared client method:
// URL template, verb, declared parameters, body designation, and the derived
// query shape. Build it once at setup time and reuse it for every call.
type Route struct {
	verb     Verb
	template string
	chunks   []chunk

	params       []Param
	paramIndex   map[string]int
	placeholders map[string]struct{}

	// bodyParam is the effective body parameter name, "" when the route
	// carries no body.
	bodyParam string

	// queryNames are the declared parameters that end up in the query
	// string: everything not consumed as a placeholder or as the body.
	queryNames []string
}

// Verb returns the route's HTTP verb.
func (r *Route) Verb() Verb { return r.verb }

// Template returns the route's URL template.
func (r *Route) Template() string { return r.template }

// BodyParam returns the effective body parameter name, "" when none.
func (r *Route) BodyParam() string { return r.bodyParam }

// QueryParams returns the names of the parameters routed to the query string.
func (r *Route) QueryParams() []string {
	out := make([]string, len(r.queryNames))
	copy(out, r.queryNames)
	return out
}

// RouteOption configures a route declaration.
type RouteOption func(*routeSpec)

type routeSpec struct {
	params       []Param
	bodyParam    string
	bodyExplicit bool
}

// WithParams declares optional parameters by name.
func WithParams(names ...string) RouteOption {
	return func(s *routeSpec) {
		for _, n := range names {
			s.params = append(s.params, Param{Name: n})
		}
	}
}

// WithParam declares one parameter with full control over requiredness and
// default value.
func WithParam(p Param) RouteOption {
	return func(s *routeSpec) {
		s.params = append(s.params, p)
	}
}

// WithBodyParam designates which declared parameter carries the request
// body. The parameter must be declared and must not be a template
// placeholder.
func WithBodyParam(name string) RouteOption {
	return func(s *routeSpec) {
		s.bodyParam = name
		s.bodyExplicit = true
	}
}

// defaultBodyParam is the implicit body designation for POST, PUT, and
// PATCH routes; it is consumed only when a parameter of that name is
// declared.
const defaultBodyParam = "body"

// NewRoute compiles a route declaration. All validation happens here, at
// declaration time: placeholders must correspond to declared parameters,
// an explicitly designated body parameter must be declared, and the body
// designation must not collide with a placeholder.
func NewRoute(verb Verb, template string, opts ...RouteOption) (*Route, error) {
	var spec routeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	chunks, placeholders, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}

	r := &Route{
		verb:         verb,
		template:     template,
		chunks:       chunks,
		params:       spec.params,
		paramIndex:   make(map[string]int, len(spec.params)),
		placeholders: placeholders,
	}

	for i, p := range r.params {
		if p.Name == "" {
			return nil, &RouteError{Template: template, Reason: "parameter with empty name"}
		}
		if _, dup := r.paramIndex[p.Name]; dup {
			return nil, &RouteError{Template: template, Reason: fmt.Sprintf("duplicate parameter %q", p.Name)}
		}
		r.paramIndex[p.Name] = i
	}

	for name := range placeholders {
		if _, ok := r.paramIndex[name]; !ok {
			return nil, &RouteError{Template: template, Reason: fmt.Sprintf("placeholder {%s} has no declared parameter", name)}
		}
	}

	if err := r.resolveBody(spec); err != nil {
		return nil, err
	}

	for _, p := range r.params {
		if _, consumed := placeholders[p.Name]; consumed {
			continue
		}
		if p.Name == r.bodyParam {
			continue
		}
		r.queryNames = append(r.queryNames, p.Name)
	}

	return r, nil
}

// resolveBody applies the body designation rules. An explicit designation is
// strict; the implicit "body" default is only consumed when declared.
func (r *Route) resolveBody(spec routeSpec) error {
	name := spec.bodyParam
	if name == "" {
		return nil
	}

	_, declared := r.paramIndex[name]
	_, isPlaceholder := r.placeholders[name]

	if spec.bodyExplicit {
		if !declared {
			return &RouteError{Template: r.template, Reason: fmt.Sprintf("body parameter %q is not declared", name)}
		}
		if isPlaceholder {
			return &RouteError{Template: r.template, Reason: fmt.Sprintf("body parameter %q collides with a placeholder", name)}
		}
		r.bodyParam = name
		return nil
	}

	if !declared {
		return nil
	}
	if isPlaceholder {
		return &RouteError{Template: r.template, Reason: fmt.Sprintf("body parameter %q collides with a placeholder", name)}
	}
	r.bodyParam = name
	return nil
}

// Must panics when a route declaration failed. Use it for package-level
// route variables, where a bad declaration should abort startup.
//
//	var getCat = rest.Must(rest.Get("cats/{id}", rest.WithParams("id")))
func Must(r *Route, err error) *Route {
	if err != nil {
		panic(err)
	}
	return r
}

// Get declares a GET route. GET routes carry no body.
func Get(template string, opts ...RouteOption) (*Route, error) {
	return newBodyless(VerbGet, template, opts)
}

// Delete declares a DELETE route. DELETE routes carry no body.
func Delete(template string, opts ...RouteOption) (*Route, error) {
	return newBodyless(VerbDelete, template, opts)
}

// Post declares a POST route. The parameter named "body", when declared,
// carries the request body; override with WithBodyParam.
func Post(template string, opts ...RouteOption) (*Route, error) {
	return newWithBody(VerbPost, template, opts)
}

// Put declares a PUT route with the same body defaulting as Post.
func Put(template string, opts ...RouteOption) (*Route, error) {
	return newWithBody(VerbPut, template, opts)
}

// Patch declares a PATCH route with the same body defaulting as Post.
func Patch(template string, opts ...RouteOption) (*Route, error) {
	return newWithBody(VerbPatch, template, opts)
}

func newBodyless(verb Verb, template string, opts []RouteOption) (*Route, error) {
	var spec routeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.bodyExplicit {
		return nil, &RouteError{Template: template, Reason: fmt.Sprintf("%s routes cannot declare a body parameter", verb)}
	}
	return NewRoute(verb, template, opts...)
}

func newWithBody(verb Verb, template string, opts []RouteOption) (*Route, error) {
	var spec routeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	if !spec.bodyExplicit {
		opts = append(opts, func(s *routeSpec) { s.bodyParam = defaultBodyParam })
	}
	return NewRoute(verb, template, opts...)
}

// parseTemplate compiles a URL template into literal and placeholder chunks.
// Placeholders use {name}; doubled braces escape literal braces.
func parseTemplate(template string) ([]chunk, map[string]struct{}, error) {
	var (
		chunks       []chunk
		placeholders = make(map[string]struct{})
		lit          strings.Builder
	)

	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return nil, nil, &RouteError{Template: template, Reason: "unclosed placeholder"}
			}
			name := template[i+1 : i+end]
			if name == "" {
				return nil, nil, &RouteError{Template: template, Reason: "empty placeholder name"}
			}
			if strings.ContainsAny(name, "{}") {
				return nil, nil, &RouteError{Template: template, Reason: fmt.Sprintf("malformed placeholder %q", name)}
			}
			if lit.Len() > 0 {
				chunks = append(chunks, chunk{text: lit.String()})
				lit.Reset()
			}
			chunks = append(chunks, chunk{text: name, placeholder: true})
			placeholders[name] = struct{}{}
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, nil, &RouteError{Template: template, Reason: "unmatched '}'"}
		default:
			lit.WriteByte(template[i])
			i++
		}
	}

	if lit.Len() > 0 {
		chunks = append(chunks, chunk{text: lit.String()})
	}

	return chunks, placeholders, nil
}
