package codec

// Codec encodes values of a declared shape into a JSON-compatible structure
// and decodes raw response bodies back into that shape.
//
// Encode returns nil for nil input. Decode fails on an empty or malformed
// body; it never silently returns nil for a declared shape.
type Codec interface {
	Encode(v any) (map[string]any, error)
	Decode(raw []byte) (any, error)
}

// dropNulls removes nil-valued entries from a decoded JSON map, recursing
// into nested objects and arrays. Struct fields that were unset (pointer
// nil) marshal to JSON null, so this covers both unset and explicit-null
// exclusion.
func dropNulls(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = dropNullsValue(v)
	}
	return out
}

// dropNullsValue recurses into containers. Null array elements are kept so
// element positions stay stable; only object keys are dropped.
func dropNullsValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return dropNulls(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = dropNullsValue(e)
		}
		return out
	default:
		return v
	}
}
