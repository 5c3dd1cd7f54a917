package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbukum/restkit/serializer"
	"github.com/kbukum/restkit/transport"
)

type cat struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestCall_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/cats/7" {
			t.Errorf("expected /cats/7, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("verbose"); got != "true" {
			t.Errorf("expected verbose=true, got %q", got)
		}
		json.NewEncoder(w).Encode(cat{ID: 7, Name: "Whiskers"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	getCat := Must(Get("cats/{id}", WithParams("id", "verbose")))

	got, err := Call[cat](context.Background(), c, getCat, Args{"id": 7, "verbose": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Whiskers" {
		t.Errorf("expected Whiskers, got %s", got.Name)
	}
}

func TestCall_PostBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		var in cat
		json.NewDecoder(r.Body).Decode(&in)
		if in.Name != "Tom" {
			t.Errorf("expected Tom in body, got %s", in.Name)
		}
		in.ID = 1
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	createCat := Must(Post("cats", WithParams("body")))

	got, err := Call[cat](context.Background(), c, createCat, Args{"body": cat{Name: "Tom"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("expected ID 1, got %d", got.ID)
	}
}

func TestRequest_NotFoundDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	// The wildcard 404 entry applies to every verb.
	for _, call := range []func() (any, error){
		func() (any, error) { return c.Get(context.Background(), "cats/999", nil) },
		func() (any, error) { return c.Delete(context.Background(), "cats/999", nil) },
	} {
		_, err := call()
		if err == nil {
			t.Fatal("expected error for 404")
		}
		if !IsNotFound(err) {
			t.Errorf("expected NotFoundError, got %T: %v", err, err)
		}
		if !IsAPIError(err) {
			t.Errorf("NotFoundError should match the APIError hierarchy, got %v", err)
		}
	}
}

func TestRequest_ExactHandlerBeatsWildcard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	errDeleted := errors.New("cat already deleted")
	c.RegisterErrorHandler(VerbDelete, 404, func(resp *transport.Response) error {
		return errDeleted
	})

	_, err := c.Delete(context.Background(), "cats/1", nil)
	if !errors.Is(err, errDeleted) {
		t.Errorf("expected exact DELETE handler, got %v", err)
	}

	// Other verbs still hit the wildcard.
	_, err = c.Get(context.Background(), "cats/1", nil)
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError for GET, got %v", err)
	}

	// Removing the exact entry falls back to the wildcard.
	c.UnregisterErrorHandler(VerbDelete, 404)
	_, err = c.Delete(context.Background(), "cats/1", nil)
	if !IsNotFound(err) {
		t.Errorf("expected wildcard NotFoundError after unregister, got %v", err)
	}
}

func TestRequest_HandlerOverwrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	errFirst := errors.New("first")
	errSecond := errors.New("second")
	c.RegisterErrorHandler(VerbPost, 409, func(*transport.Response) error { return errFirst })
	c.RegisterErrorHandler(VerbPost, 409, func(*transport.Response) error { return errSecond })

	_, err := c.Post(context.Background(), "cats", nil, nil)
	if !errors.Is(err, errSecond) {
		t.Errorf("expected later registration to win, got %v", err)
	}
}

func TestRequest_UnregisterFallsToBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte("gone"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.UnregisterErrorHandler(VerbAny, 404)

	_, err := c.Get(context.Background(), "cats/1", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if IsNotFound(err) {
		t.Errorf("expected base APIError after unregister, got %v", err)
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 404 {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
}

func TestRequest_NilExactHandlerFallsToWildcard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.RegisterErrorHandler(VerbGet, 404, func(*transport.Response) error { return nil })

	// The declining exact handler passes lookup on to the wildcard entry.
	_, err := c.Get(context.Background(), "cats/1", nil)
	if !IsNotFound(err) {
		t.Errorf("expected wildcard NotFoundError, got %v", err)
	}
}

func TestRequest_NilHandlerResultFallsToBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.RegisterErrorHandler(VerbAny, 500, func(*transport.Response) error { return nil })

	_, err := c.Get(context.Background(), "cats", nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 500 {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
}

// failingTransport simulates a transport-level failure.
type failingTransport struct {
	err error
}

func (f *failingTransport) Send(ctx context.Context, req transport.Request) (*transport.Response, error) {
	return nil, f.err
}

func TestRequest_TransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	c, err := New(Config{BaseURL: "http://api.example.com"}, WithTransport(&failingTransport{err: cause}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Get(context.Background(), "cats", nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "RequestException" {
		t.Errorf("expected RequestException, got %q", apiErr.Message)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestRequest_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Get(context.Background(), "cats", nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Cannot decode response" {
		t.Errorf("expected Cannot decode response, got %q", apiErr.Message)
	}
	if apiErr.Cause == nil {
		t.Error("expected a wrapped cause")
	}
}

func TestRequest_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Delete(context.Background(), "cats/1", nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError for empty body, got %T: %v", err, err)
	}
	if apiErr.Message != "Cannot decode response" {
		t.Errorf("expected Cannot decode response, got %q", apiErr.Message)
	}
}

func TestCall_SerializationErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not-a-number"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	getCat := Must(Get("cats/{id}", WithParams("id")))

	_, err := Call[cat](context.Background(), c, getCat, Args{"id": 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !serializer.IsSerialization(err) {
		t.Errorf("expected serialization error unchanged, got %T: %v", err, err)
	}
	if IsAPIError(err) {
		t.Errorf("serialization failures must not be wrapped as APIError, got %v", err)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{BaseURL: "http://api.example.com///"}, WithTransport(&failingTransport{err: errors.New("x")}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL() != "http://api.example.com" {
		t.Errorf("expected trimmed base URL, got %s", c.BaseURL())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := New(Config{BaseURL: "not a url"}); err == nil {
		t.Fatal("expected error for malformed base URL")
	}
}

func TestDo_Untyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"count": 3})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	raw, err := Do[any](context.Background(), c, VerbGet, "cats/count", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", raw)
	}
	if m["count"] != json.Number("3") {
		t.Errorf("expected count=3, got %v", m["count"])
	}
}

func TestCall_LargeIntegerPrecision(t *testing.T) {
	// 2^53+1 is the first integer float64 cannot represent.
	const bigID = int64(9007199254740993)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("since"); got != "9007199254740993" {
			t.Errorf("expected since=9007199254740993, got %q", got)
		}
		w.Write([]byte(`{"id":9007199254740993,"name":"Whiskers"}`))
	}))
	defer srv.Close()

	type bigCat struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	c := newTestClient(t, srv.URL)
	listCats := Must(Get("cats", WithParams("since")))

	got, err := Call[bigCat](context.Background(), c, listCats, Args{"since": bigID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != bigID {
		t.Errorf("expected %d, got %d", bigID, got.ID)
	}
}
