package codec

import (
	"encoding/json"
	"fmt"
)

type recordCodec[T any] struct{}

// Record returns a codec for a structured record type T, encoded and decoded
// through its JSON tags.
func Record[T any]() Codec { return recordCodec[T]{} }

func (recordCodec[T]) Encode(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkShape[T](v); err != nil {
		return nil, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode record: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("codec: encode record: %w", err)
	}
	return dropNulls(m), nil
}

func (recordCodec[T]) Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("codec: empty body for record shape")
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("codec: decode record: %w", err)
	}
	return out, nil
}

// checkShape rejects runtime values that are not T or *T. Serialization
// errors must surface at prepare time, not as mangled payloads.
func checkShape[T any](v any) error {
	switch v.(type) {
	case T, *T:
		return nil
	default:
		var want T
		return fmt.Errorf("codec: expected %T, got %T", want, v)
	}
}
