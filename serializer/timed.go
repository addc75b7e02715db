package serializer

import (
	"time"

	"github.com/hasbyte1/go-itsdangerous/signing"
)

// TimedSerializer is a [Serializer] whose tokens embed their signing time
// and can be rejected after a caller-supplied maximum age.  It constructs
// [signing.TimestampSigner] values through its own typed factory, so the
// timestamp capability is a compile-time fact rather than a runtime probe.
//
// Construct with [NewTimed] or [NewURLSafeTimed].
type TimedSerializer struct {
	*Serializer
}

// NewTimed creates a [TimedSerializer] with the same defaults and options
// as [New].
func NewTimed(secretKey []byte, opts ...Option) (*TimedSerializer, error) {
	base, err := New(secretKey, opts...)
	if err != nil {
		return nil, err
	}
	return &TimedSerializer{Serializer: base}, nil
}

// MakeSigner returns a fresh [signing.TimestampSigner] configured with the
// serializer's secret and signer options.  A nil salt selects the
// serializer's own salt.
func (s *TimedSerializer) MakeSigner(salt []byte) (*signing.TimestampSigner, error) {
	return signing.NewTimestampSigner(s.secretKey, s.signerArgs(salt)...)
}

// Stringify signs v into a token string carrying the current timestamp.
func (s *TimedSerializer) Stringify(v any) (string, error) {
	return s.StringifyWithSalt(v, nil)
}

// StringifyWithSalt is [TimedSerializer.Stringify] under a one-off salt.
func (s *TimedSerializer) StringifyWithSalt(v any, salt []byte) (string, error) {
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

// Parse verifies a token produced by [TimedSerializer.Stringify] and
// returns the embedded value.  When maxAge is positive, tokens older than
// maxAge (and future-dated tokens) fail with
// [*signing.SignatureExpiredError]; zero disables the age check.
func (s *TimedSerializer) Parse(signed string, maxAge time.Duration) (any, error) {
	return s.ParseWithSalt(signed, nil, maxAge)
}

// ParseWithSalt is [TimedSerializer.Parse] under a one-off salt.
func (s *TimedSerializer) ParseWithSalt(signed string, salt []byte, maxAge time.Duration) (any, error) {
	signer, err := s.MakeSigner(salt)
	if err != nil {
		return nil, err
	}
	payload, err := signer.Unsign([]byte(signed), maxAge)
	if err != nil {
		return nil, err
	}
	return s.parsePayload(payload)
}

// ParseWithTime is [TimedSerializer.Parse] plus the token's signing time.
func (s *TimedSerializer) ParseWithTime(signed string, maxAge time.Duration) (any, time.Time, error) {
	signer, err := s.MakeSigner(nil)
	if err != nil {
		return nil, time.Time{}, err
	}
	payload, date, err := signer.UnsignWithTime([]byte(signed), maxAge)
	if err != nil {
		return nil, time.Time{}, err
	}
	v, err := s.parsePayload(payload)
	if err != nil {
		return nil, time.Time{}, err
	}
	return v, date, nil
}

// ParseUnsafe mirrors [Serializer.ParseUnsafe] while enforcing maxAge: bad
// signatures, expired tokens, and bad payloads yield (nil, false, nil); any
// other failure is returned as the error.
func (s *TimedSerializer) ParseUnsafe(signed string, maxAge time.Duration) (any, bool, error) {
	return parseUnsafeResult(s.Parse(signed, maxAge))
}
