package signing

import (
	"errors"
	"time"
)

// Sentinel errors returned by signing operations.
//
// The payload-carrying error types below all answer true to [errors.Is]
// checks against their ancestors, mirroring the exception hierarchy of the
// Python original.  [ErrBadData] is the root: every verification failure in
// this module matches it.
//
//	_, err := signer.Unsign(token)
//	if errors.Is(err, signing.ErrBadSignature) {
//	    // token was tampered with or signed under a different key/salt
//	}
var (
	// ErrBadData is the root of the verification error taxonomy.  It is
	// matched by every bad-signature, bad-timestamp, expired-signature, and
	// malformed-base64 error produced by this module.
	ErrBadData = errors.New("signing: bad data")

	// ErrBadSignature is matched when a token's signature does not verify,
	// or when no separator could be found in a token at all.
	ErrBadSignature = errors.New("signing: signature does not match")

	// ErrBadTimeSignature is matched when a timestamped token carries a
	// missing or malformed timestamp, or when a timestamped unsign wraps an
	// underlying signature failure.
	ErrBadTimeSignature = errors.New("signing: invalid timestamped signature")

	// ErrSignatureExpired is matched when a token's age exceeds the
	// caller-supplied maximum, or when the token is dated in the future.
	ErrSignatureExpired = errors.New("signing: signature expired")

	// ErrEmptySecretKey is returned by constructors when a nil or
	// zero-length secret key is provided.
	ErrEmptySecretKey = errors.New("signing: secret key must not be empty")

	// ErrInvalidSeparator is returned by constructors when the separator is
	// empty or contains a character from the base64url alphabet, which
	// would make token splitting ambiguous.
	ErrInvalidSeparator = errors.New("signing: separator must not contain base64url alphabet characters")

	// ErrUnknownKeyDerivation is returned by constructors for an
	// unrecognised [KeyDerivation] value.
	ErrUnknownKeyDerivation = errors.New("signing: unknown key derivation method")

	// ErrUnknownDigest is returned by constructors (and [LookupDigest]) for
	// a digest method that has not been registered.
	ErrUnknownDigest = errors.New("signing: unknown digest method")

	// ErrInvalidTimestamp is returned when an embedded timestamp does not
	// map to a representable instant.
	ErrInvalidTimestamp = errors.New("signing: timestamp outside representable range")
)

// BadDataError reports malformed input discovered before any signature
// check, such as bytes that are not valid unpadded base64url.
//
// Matches [ErrBadData] under [errors.Is].
type BadDataError struct {
	Message string
}

// Error implements the error interface.
func (e *BadDataError) Error() string { return e.Message }

// Is reports taxonomy membership for [errors.Is].
func (e *BadDataError) Is(target error) bool { return target == ErrBadData }

// BadSignatureError reports a failed signature verification.
//
// Payload holds the value that was extracted from the token before (or
// despite) the failure.  It is unverified data supplied by an untrusted
// party: inspect it for diagnostics or logging, never for trust decisions.
//
// Matches [ErrBadSignature] and [ErrBadData] under [errors.Is].
type BadSignatureError struct {
	Message string

	// Payload is the unverified value recovered from the token.
	Payload []byte
}

// Error implements the error interface.
func (e *BadSignatureError) Error() string { return e.Message }

// Is reports taxonomy membership for [errors.Is].
func (e *BadSignatureError) Is(target error) bool {
	return target == ErrBadSignature || target == ErrBadData
}

// BadTimeSignatureError reports a failed verification of a timestamped
// token: the timestamp segment was missing or malformed, or an underlying
// signature failure was annotated with timestamp information.
//
// DateSigned is the signing time recovered from the token when a plausible
// timestamp segment existed, even if the signature itself was invalid.  The
// zero [time.Time] means no timestamp could be recovered.  Like Payload, it
// is unverified data.
//
// Matches [ErrBadTimeSignature], [ErrBadSignature], and [ErrBadData] under
// [errors.Is].
type BadTimeSignatureError struct {
	BadSignatureError

	// DateSigned is the recovered signing time, or the zero time.
	DateSigned time.Time
}

// Is reports taxonomy membership for [errors.Is].
func (e *BadTimeSignatureError) Is(target error) bool {
	return target == ErrBadTimeSignature || e.BadSignatureError.Is(target)
}

// SignatureExpiredError reports a timestamped token whose age exceeded the
// caller-supplied maximum, or whose timestamp lies in the future.  Future
// dating is rejected deliberately: accepting it would let a forger extend a
// token's effective validity window under clock skew.
//
// Matches [ErrSignatureExpired] and all of its ancestors under [errors.Is].
type SignatureExpiredError struct {
	BadTimeSignatureError
}

// Is reports taxonomy membership for [errors.Is].
func (e *SignatureExpiredError) Is(target error) bool {
	return target == ErrSignatureExpired || e.BadTimeSignatureError.Is(target)
}
