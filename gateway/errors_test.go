package gateway

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err   error
		check func(error) bool
		name  string
	}{
		{NewConfigurationError("url must be provided"), IsConfiguration, "configuration"},
		{NewSerializationError(errors.New("bad shape")), IsSerialization, "serialization"},
		{NewHTTPError(500, "500 Internal Server Error", nil), IsHTTP, "http"},
		{NewDecodingError(errors.New("bad body")), IsDecoding, "decoding"},
	}

	for _, c := range cases {
		if !c.check(c.err) {
			t.Errorf("%s: classifier rejected its own kind", c.name)
		}
		if !strings.Contains(c.err.Error(), c.name) {
			t.Errorf("%s: kind missing from message %q", c.name, c.err.Error())
		}
	}

	// Each kind matches only its own classifier.
	if IsHTTP(NewConfigurationError("x")) {
		t.Error("configuration error should not classify as http")
	}
	if IsDecoding(NewHTTPError(500, "oops", nil)) {
		t.Error("http error should not classify as decoding")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSerializationError(fmt.Errorf("wrap: %w", cause))
	if !errors.Is(err, cause) {
		t.Error("expected unwrap chain to reach the cause")
	}
}

func TestAsHTTP(t *testing.T) {
	err := NewHTTPError(404, "404 Not Found", []byte(`{"detail":"gone"}`))

	httpErr, ok := AsHTTP(fmt.Errorf("call failed: %w", err))
	if !ok {
		t.Fatal("expected AsHTTP to match through wrapping")
	}
	if httpErr.StatusCode != 404 {
		t.Errorf("expected 404, got %d", httpErr.StatusCode)
	}
	if httpErr.Reason != "404 Not Found" {
		t.Errorf("unexpected reason: %s", httpErr.Reason)
	}
	if !strings.Contains(string(httpErr.Body), "gone") {
		t.Errorf("unexpected body: %s", httpErr.Body)
	}

	if _, ok := AsHTTP(NewDecodingError(errors.New("x"))); ok {
		t.Error("AsHTTP should not match a decoding error")
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("GET")
	if err != nil || m != MethodGet {
		t.Errorf("expected GET, got %v (%v)", m, err)
	}
	if _, err := ParseMethod("FETCH"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestMethodClassification(t *testing.T) {
	for _, m := range []Method{MethodGet, MethodOptions, MethodHead} {
		if !isReadLike(m) || isWriteLike(m) {
			t.Errorf("%s should be read-like", m)
		}
	}
	for _, m := range []Method{MethodPost, MethodPut, MethodPatch, MethodDelete} {
		if !isWriteLike(m) || isReadLike(m) {
			t.Errorf("%s should be write-like", m)
		}
	}
}
