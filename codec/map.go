package codec

import (
	"encoding/json"
	"fmt"
)

type mapCodec struct{}

// Map returns a codec for the unordered key-value mapping shape.
func Map() Codec { return mapCodec{} }

func (mapCodec) Encode(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("codec: expected map[string]any, got %T", v)
	}
	return dropNulls(m), nil
}

func (mapCodec) Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("codec: empty body for map shape")
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("codec: decode map: %w", err)
	}
	return m, nil
}
