package validation

import (
	"errors"
	"strings"
	"testing"
)

type endpoint struct {
	Name    string `json:"name" validate:"required"`
	Target  string `json:"target" validate:"required,url"`
	Method  string `json:"method" validate:"omitempty,oneof=GET POST PUT PATCH DELETE OPTIONS HEAD"`
	Retries int    `json:"retries" validate:"min=0,max=10"`
}

func TestValidate_OK(t *testing.T) {
	e := endpoint{Name: "users", Target: "https://api.test", Method: "GET"}
	if err := Validate(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(endpoint{Target: "https://api.test"})
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(verr.Fields))
	}
	if verr.Fields[0].Field != "name" {
		t.Errorf("expected field name, got %s", verr.Fields[0].Field)
	}
	if verr.Fields[0].Message != "is required" {
		t.Errorf("unexpected message: %s", verr.Fields[0].Message)
	}
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(endpoint{Name: "users", Target: "https://api.test", Method: "FETCH"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	type shape struct {
		BaseURL string `json:"base_url" validate:"required"`
	}
	err := Validate(shape{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Errorf("expected json tag name in error, got: %v", err)
	}
}
