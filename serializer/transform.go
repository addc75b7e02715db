package serializer

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/hasbyte1/go-itsdangerous/signing"
)

// compressionMarker prefixes the encoded payload when compression was
// applied.  '.' is outside the base64url alphabet, so it can be stripped
// unambiguously on decode.
const compressionMarker = '.'

// Transform rewrites payload bytes after marshaling and before
// unmarshaling.  It is the composition point for cross-cutting payload
// behavior such as URL-safe encoding; both [Serializer] and
// [TimedSerializer] accept one via [WithTransform].
type Transform interface {
	// Encode rewrites marshaled payload bytes before signing.
	Encode(payload []byte) ([]byte, error)

	// Decode reverses Encode after signature verification.
	Decode(encoded []byte) ([]byte, error)
}

// URLSafeTransform makes payloads safe for URLs, cookies, and email links:
// the payload is zlib-compressed when that actually saves space, then
// base64url-encoded.  Compressed payloads are marked with a leading '.' on
// the encoded text.
//
// The zero value is ready to use and is what [NewURLSafe] and
// [NewURLSafeTimed] install.
type URLSafeTransform struct{}

// Encode compresses payload and keeps the compressed form only when it is
// at least one byte smaller than the original, then base64url-encodes the
// chosen bytes and prepends the compression marker when compression won.
func (URLSafeTransform) Encode(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	data := payload
	compressed := false
	if buf.Len() < len(payload) {
		data = buf.Bytes()
		compressed = true
	}

	encoded := signing.Base64Encode(data)
	if !compressed {
		return encoded, nil
	}
	// The marker goes on the encoded text, not the raw bytes, so it stays
	// outside the base64url alphabet.
	out := make([]byte, 0, 1+len(encoded))
	out = append(out, compressionMarker)
	out = append(out, encoded...)
	return out, nil
}

// Decode strips the compression marker if present, base64url-decodes the
// remainder, and decompresses when the marker was set.  Base64 failures and
// decompression failures return distinct [*BadPayloadError] values so the
// two stages are distinguishable in diagnostics.
func (URLSafeTransform) Decode(encoded []byte) ([]byte, error) {
	decompress := false
	if len(encoded) > 0 && encoded[0] == compressionMarker {
		decompress = true
		encoded = encoded[1:]
	}

	data, err := signing.Base64Decode(encoded)
	if err != nil {
		return nil, &BadPayloadError{
			Message: "could not base64-decode the payload",
			Cause:   err,
		}
	}

	if decompress {
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &BadPayloadError{
				Message: "could not zlib-decompress the payload",
				Cause:   err,
			}
		}
		out, err := io.ReadAll(zr)
		if cerr := zr.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, &BadPayloadError{
				Message: "could not zlib-decompress the payload",
				Cause:   err,
			}
		}
		data = out
	}
	return data, nil
}
