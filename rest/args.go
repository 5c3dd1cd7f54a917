package rest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/restkit/serializer"
)

// Args are the named call-time arguments bound against a Route's declared
// parameters. They live for the duration of one call.
type Args map[string]any

// boundRequest is the result of binding Args against a Route: the concrete
// request shape handed to the dispatcher.
type boundRequest struct {
	path    string
	query   map[string]string
	body    any
	hasBody bool
}

// bind resolves call-time arguments against the declaration: unknown names
// are rejected, defaults are applied, required parameters and placeholders
// are checked, the URL path is produced by substitution, and the remaining
// parameters are serialized into the query map. The placeholder and body
// names were excluded from the query shape at declaration time.
func (r *Route) bind(args Args, ser serializer.Serializer) (*boundRequest, error) {
	for name := range args {
		if _, ok := r.paramIndex[name]; !ok {
			return nil, &RouteError{Template: r.template, Reason: fmt.Sprintf("unknown argument %q", name)}
		}
	}

	bound := make(map[string]any, len(r.params))
	for _, p := range r.params {
		if v, ok := args[p.Name]; ok {
			bound[p.Name] = v
			continue
		}
		if p.Default != nil {
			bound[p.Name] = p.Default
			continue
		}
		if p.Required {
			return nil, &RouteError{Template: r.template, Reason: fmt.Sprintf("missing required argument %q", p.Name)}
		}
	}

	path, err := r.expand(bound)
	if err != nil {
		return nil, err
	}

	query := make(map[string]string, len(r.queryNames))
	for _, name := range r.queryNames {
		v, ok := bound[name]
		if !ok || v == nil {
			continue
		}
		dumped, err := ser.Dump(v)
		if err != nil {
			return nil, err
		}
		if dumped == nil {
			continue
		}
		query[name] = queryValue(dumped)
	}

	out := &boundRequest{path: path, query: query}
	if r.bodyParam != "" {
		if v, ok := bound[r.bodyParam]; ok {
			out.body = v
			out.hasBody = true
		}
	}
	return out, nil
}

// expand substitutes each placeholder with the string form of its bound
// value. A missing binding here means a placeholder was declared optional
// and omitted.
func (r *Route) expand(bound map[string]any) (string, error) {
	var sb strings.Builder
	for _, c := range r.chunks {
		if !c.placeholder {
			sb.WriteString(c.text)
			continue
		}
		v, ok := bound[c.text]
		if !ok {
			return "", &RouteError{Template: r.template, Reason: fmt.Sprintf("no value bound for placeholder {%s}", c.text)}
		}
		sb.WriteString(stringify(v))
	}
	return sb.String(), nil
}

// stringify renders the string form of a bound placeholder value.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// queryValue renders a dumped (JSON-compatible) value for the query string.
// Scalars keep their plain form; composites are compact JSON.
func queryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}
