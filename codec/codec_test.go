package codec

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

type user struct {
	Name  string  `json:"name"`
	ID    int     `json:"id"`
	Email *string `json:"email,omitempty"`
}

type checkedUser struct {
	Name string `json:"name" validate:"required"`
	ID   int    `json:"id" validate:"min=1"`
}

func TestMap_RoundTrip(t *testing.T) {
	c := Map()
	in := map[string]any{"name": "Alice", "id": float64(7)}

	encoded, err := c.Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := json.Marshal(encoded)
	decoded, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(decoded, in) {
		t.Errorf("round trip mismatch: %v != %v", decoded, in)
	}
}

func TestMap_ExcludesNulls(t *testing.T) {
	encoded, err := Map().Encode(map[string]any{"name": "Alice", "email": nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := encoded["email"]; ok {
		t.Error("null value should be excluded")
	}
	if encoded["name"] != "Alice" {
		t.Errorf("expected Alice, got %v", encoded["name"])
	}
}

func TestMap_ShapeMismatch(t *testing.T) {
	if _, err := Map().Encode("not a map"); err == nil {
		t.Error("expected error for non-map input")
	}
}

func TestMap_EmptyBody(t *testing.T) {
	if _, err := Map().Decode(nil); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	c := Record[user]()
	in := user{Name: "Johnny", ID: 777}

	encoded, err := c.Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := json.Marshal(encoded)
	decoded, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(decoded, in) {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, in)
	}
}

func TestRecord_ExcludesUnsetAndNull(t *testing.T) {
	encoded, err := Record[user]().Encode(user{Name: "Johnny", ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := encoded["email"]; ok {
		t.Error("unset pointer field should be excluded")
	}
}

func TestRecord_AcceptsPointer(t *testing.T) {
	encoded, err := Record[user]().Encode(&user{Name: "Johnny", ID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoded["name"] != "Johnny" {
		t.Errorf("expected Johnny, got %v", encoded["name"])
	}
}

func TestRecord_ShapeMismatch(t *testing.T) {
	_, err := Record[user]().Encode(map[string]any{"name": "Johnny"})
	if err == nil {
		t.Fatal("expected error for wrong runtime shape")
	}
	if !strings.Contains(err.Error(), "got map[string]inter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRecord_MalformedBody(t *testing.T) {
	if _, err := Record[user]().Decode([]byte("{not json")); err == nil {
		t.Error("expected error for malformed body")
	}
	if _, err := Record[user]().Decode(nil); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestValidated_RoundTrip(t *testing.T) {
	c := Validated[checkedUser]()
	in := checkedUser{Name: "Alice", ID: 3}

	encoded, err := c.Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := json.Marshal(encoded)
	decoded, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(decoded, in) {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, in)
	}
}

func TestValidated_RejectsInvalidInput(t *testing.T) {
	if _, err := Validated[checkedUser]().Encode(checkedUser{ID: 0}); err == nil {
		t.Error("expected validation error on encode")
	}
}

func TestValidated_RejectsInvalidResponse(t *testing.T) {
	_, err := Validated[checkedUser]().Decode([]byte(`{"name":"","id":0}`))
	if err == nil {
		t.Error("expected validation error on decode")
	}
}

func TestDropNulls_InsideArrays(t *testing.T) {
	in := map[string]any{
		"items": []any{
			map[string]any{"a": nil, "b": 1},
			nil,
		},
	}
	out := dropNulls(in)

	items := out["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("array length must be preserved, got %d", len(items))
	}
	first := items[0].(map[string]any)
	if _, ok := first["a"]; ok {
		t.Error("null key inside an array element should be dropped")
	}
	if first["b"] != 1 {
		t.Errorf("expected 1, got %v", first["b"])
	}
	if items[1] != nil {
		t.Error("null array elements keep their position")
	}
}

func TestDropNulls_Nested(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil, "d": 1},
	}
	out := dropNulls(in)
	if _, ok := out["a"]; ok {
		t.Error("top-level null should be dropped")
	}
	nested := out["b"].(map[string]any)
	if _, ok := nested["c"]; ok {
		t.Error("nested null should be dropped")
	}
	if nested["d"] != 1 {
		t.Errorf("expected 1, got %v", nested["d"])
	}
}
