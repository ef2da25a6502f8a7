// Package codec provides encoders/decoders for the payload shapes a gateway
// declaration can carry.
//
// Three shapes are supported:
//
//   - Map: an unordered key-value mapping (map[string]any)
//   - Record[T]: a structured record type, encoded via its JSON tags
//   - Validated[T]: Record[T] plus go-playground/validator struct tags,
//     enforced on both encode input and decode output
//
// Encode produces a JSON-compatible map with unset and null-valued fields
// excluded, so partial payloads never round-trip spurious fields. Decode is
// the inverse: decoding the encoded form of a value yields an equal value.
package codec
