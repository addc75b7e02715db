package serializer

import (
	"errors"

	"github.com/hasbyte1/go-itsdangerous/signing"
)

// Serializer signs structured values into string tokens and recovers them
// after signature verification.  Values pass through the configured [Codec]
// (JSON by default) and optional [Transform] before being handed to a
// [signing.Signer].
//
// Construct with [New] or [NewURLSafe]; the zero value is not usable.  A
// Serializer is immutable after construction and safe for concurrent use.
type Serializer struct {
	secretKey  []byte
	salt       []byte
	codec      Codec
	transform  Transform
	signerOpts []signing.Option
}

// New creates a [Serializer] for the given secret key.  The default salt is
// "itsdangerous" and the default codec is [JSONCodec].
//
// Signer configuration errors (bad separator, unknown digest or derivation)
// surface here rather than on first use.
func New(secretKey []byte, opts ...Option) (*Serializer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	s := &Serializer{
		secretKey:  cloneBytes(secretKey),
		salt:       cfg.salt,
		codec:      cfg.codec,
		transform:  cfg.transform,
		signerOpts: cfg.signerOpts,
	}
	if _, err := s.MakeSigner(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// MakeSigner returns a fresh [signing.Signer] configured with the
// serializer's secret and signer options.  A nil salt selects the
// serializer's own salt; a non-nil salt overrides it for a single
// operation.
func (s *Serializer) MakeSigner(salt []byte) (*signing.Signer, error) {
	return signing.New(s.secretKey, s.signerArgs(salt)...)
}

// signerArgs assembles the option list for signer construction.  The salt
// option is appended last so it wins over any salt smuggled in through
// [WithSignerOptions].
func (s *Serializer) signerArgs(salt []byte) []signing.Option {
	if salt == nil {
		salt = s.salt
	}
	opts := make([]signing.Option, 0, len(s.signerOpts)+1)
	opts = append(opts, s.signerOpts...)
	opts = append(opts, signing.WithSalt(string(salt)))
	return opts
}

// stringifyPayload marshals v and applies the configured transform.
func (s *Serializer) stringifyPayload(v any) ([]byte, error) {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	if s.transform != nil {
		return s.transform.Encode(data)
	}
	return data, nil
}

// parsePayload reverses the transform and unmarshals the payload.  Codec
// failures are wrapped in [*BadPayloadError]; transform failures already
// carry that type.
func (s *Serializer) parsePayload(data []byte) (any, error) {
	if s.transform != nil {
		decoded, err := s.transform.Decode(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}
	v, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, &BadPayloadError{
			Message: "could not unmarshal the payload",
			Cause:   err,
		}
	}
	return v, nil
}

// Stringify signs v into a token string.
func (s *Serializer) Stringify(v any) (string, error) {
	return s.StringifyWithSalt(v, nil)
}

// StringifyWithSalt is [Serializer.Stringify] under a one-off salt.
func (s *Serializer) StringifyWithSalt(v any, salt []byte) (string, error) {
	payload, err := s.stringifyPayload(v)
	if err != nil {
		return "", err
	}
	signer, err := s.MakeSigner(salt)
	if err != nil {
		return "", err
	}
	signed, err := signer.Sign(payload)
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// Parse verifies a token produced by [Serializer.Stringify] and returns the
// embedded value.  Signature failures propagate as
// [*signing.BadSignatureError]; payload failures as [*BadPayloadError].
func (s *Serializer) Parse(signed string) (any, error) {
	return s.ParseWithSalt(signed, nil)
}

// ParseWithSalt is [Serializer.Parse] under a one-off salt.
func (s *Serializer) ParseWithSalt(signed string, salt []byte) (any, error) {
	signer, err := s.MakeSigner(salt)
	if err != nil {
		return nil, err
	}
	payload, err := signer.Unsign([]byte(signed))
	if err != nil {
		return nil, err
	}
	return s.parsePayload(payload)
}

// ParseUnsafe parses a token without treating verification failure as an
// error: bad signatures and bad payloads yield (nil, false, nil) instead.
// Any other failure is returned as the error.  The boolean reports whether
// the value can be trusted.
//
// Only use this to inspect tokens, never to act on them, and only with
// payload formats that are safe to decode untrusted (the default JSON codec
// is; a codec with code-execution behavior is not).
func (s *Serializer) ParseUnsafe(signed string) (any, bool, error) {
	return parseUnsafeResult(s.Parse(signed))
}

// parseUnsafeResult folds the two known-bad error kinds into the
// (nil, false, nil) sentinel shared by all ParseUnsafe variants.
func parseUnsafeResult(v any, err error) (any, bool, error) {
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, signing.ErrBadSignature), errors.Is(err, ErrBadPayload):
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// cloneBytes returns a fresh copy of b so that callers cannot mutate the
// secret held inside a serializer.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
