package validation

import (
	"errors"
	"strings"
	"testing"
)

type endpointConfig struct {
	BaseURL string `json:"base_url" validate:"required,url"`
	APIKey  string `json:"api_key" validate:"required,min=8"`
	Mode    string `json:"mode" validate:"omitempty,oneof=live sandbox"`
}

func TestValidate_Valid(t *testing.T) {
	cfg := endpointConfig{
		BaseURL: "https://api.example.com",
		APIKey:  "secret-key-123",
		Mode:    "sandbox",
	}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	cfg := endpointConfig{BaseURL: "not a url", APIKey: "x", Mode: "test"}

	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}

	byField := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		byField[f.Field] = f.Message
	}
	if byField["base_url"] != "must be a valid URL" {
		t.Errorf("unexpected base_url message: %q", byField["base_url"])
	}
	if !strings.Contains(byField["api_key"], "at least 8") {
		t.Errorf("unexpected api_key message: %q", byField["api_key"])
	}
	if !strings.Contains(byField["mode"], "one of") {
		t.Errorf("unexpected mode message: %q", byField["mode"])
	}
}

func TestValidate_RequiredMessage(t *testing.T) {
	err := Validate(&endpointConfig{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "base_url is required") {
		t.Errorf("expected readable message, got %q", err.Error())
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	type s struct {
		CamelCaseField string `json:"renamed" validate:"required"`
		NoTag          string `validate:"required"`
	}

	err := Validate(&s{})
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	names := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		names[f.Field] = true
	}
	if !names["renamed"] {
		t.Errorf("expected json tag name, got %v", names)
	}
	if !names["no_tag"] {
		t.Errorf("expected snake_case fallback, got %v", names)
	}
}
