package codec

import (
	"fmt"

	"github.com/kbukum/gatewaykit/validation"
)

type validatedCodec[T any] struct {
	record recordCodec[T]
}

// Validated returns a codec for a schema-validated record type T. Validator
// struct tags on T are enforced on the encode input and on the decode output,
// so invalid payloads fail before they reach the wire and invalid responses
// fail before they reach the caller.
func Validated[T any]() Codec { return validatedCodec[T]{} }

func (c validatedCodec[T]) Encode(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkShape[T](v); err != nil {
		return nil, err
	}
	if err := validation.Validate(v); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return c.record.Encode(v)
}

func (c validatedCodec[T]) Decode(raw []byte) (any, error) {
	out, err := c.record.Decode(raw)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(out); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return out, nil
}
