package serializer

import (
	"bytes"
	"encoding/json"
)

// Codec converts structured values to payload bytes and back.  The default
// is [JSONCodec]; supply an alternative (msgpack, cbor, a constrained JSON
// schema) with [WithCodec].
//
// Implementations must be safe for concurrent use and deterministic enough
// that Marshal∘Unmarshal is the identity on the values the application signs.
type Codec interface {
	// Marshal encodes v as payload bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes payload bytes produced by Marshal.
	Unmarshal(data []byte) (any, error)
}

// JSONCodec encodes payloads as compact JSON.
//
// HTML escaping is disabled and no trailing newline is emitted, so the
// payload bytes are identical to those produced by Python's json.dumps with
// compact separators.  That byte-for-byte match is what keeps URL-safe
// tokens interchangeable across languages.
type JSONCodec struct{}

// Marshal encodes v as compact JSON without HTML escaping.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder terminates every value with a newline that is not part of
	// the payload.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON into the generic Go representation
// (map[string]any, []any, string, float64, bool, nil).
func (JSONCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
