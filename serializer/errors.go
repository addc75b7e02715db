package serializer

import (
	"errors"

	"github.com/hasbyte1/go-itsdangerous/signing"
)

// ErrBadPayload is matched by every payload failure in this package:
// deserialization of a verified payload, base64 decoding during URL-safe
// decoding, and decompression.  It sits under [signing.ErrBadData] in the
// error taxonomy.
//
//	_, err := s.Parse(token)
//	switch {
//	case errors.Is(err, signing.ErrBadSignature):
//	    // token was tampered with
//	case errors.Is(err, serializer.ErrBadPayload):
//	    // signature fine, payload rotten (codec mismatch, corrupt stream)
//	}
var ErrBadPayload = errors.New("serializer: could not decode payload")

// BadPayloadError reports a payload that could not be decoded even though
// the signature was valid (or was deliberately skipped).  Cause holds the
// underlying codec, base64, or decompression error and is exposed through
// [errors.Unwrap].
//
// Matches [ErrBadPayload] and [signing.ErrBadData] under [errors.Is].
type BadPayloadError struct {
	Message string

	// Cause is the underlying decode failure.
	Cause error
}

// Error implements the error interface.
func (e *BadPayloadError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying decode failure.
func (e *BadPayloadError) Unwrap() error { return e.Cause }

// Is reports taxonomy membership for [errors.Is].
func (e *BadPayloadError) Is(target error) bool {
	return target == ErrBadPayload || target == signing.ErrBadData
}
