package signing

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// maxTimestamp is 9999-12-31T23:59:59Z, the largest instant the token
// format accepts.  Anything beyond it is treated as a malformed timestamp
// rather than a real signing time.
const maxTimestamp = 253402300799

// TimestampSigner is a [Signer] that embeds the signing time into every
// token:
//
//	value.timestamp.signature
//
// On unsign it can enforce a maximum token age and expose the recovered
// signing time.  Construct with [NewTimestampSigner]; like [Signer] it is
// immutable and safe for concurrent use.
type TimestampSigner struct {
	Signer
	clock func() time.Time
}

// NewTimestampSigner creates a [TimestampSigner] with the same defaults and
// options as [New].  Use [WithClock] to inject a time source in tests.
func NewTimestampSigner(secretKey []byte, opts ...Option) (*TimestampSigner, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	base, err := newSigner(secretKey, cfg)
	if err != nil {
		return nil, err
	}
	return &TimestampSigner{Signer: *base, clock: cfg.clock}, nil
}

func (s *TimestampSigner) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

// Timestamp returns the current time as whole seconds since the Unix epoch,
// the integer embedded into tokens.
func (s *TimestampSigner) Timestamp() uint64 {
	return uint64(s.now().Unix())
}

// timestampToTime converts an embedded timestamp to a UTC instant.
func timestampToTime(ts uint64) (time.Time, error) {
	if ts > maxTimestamp {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidTimestamp, ts)
	}
	return time.Unix(int64(ts), 0).UTC(), nil
}

// Sign appends the encoded current timestamp to value and signs the
// combined blob, producing value.timestamp.signature.
func (s *TimestampSigner) Sign(value []byte) ([]byte, error) {
	ts := Base64Encode(IntToBytes(s.Timestamp()))
	blob := make([]byte, 0, len(value)+len(s.sep)+len(ts))
	blob = append(blob, value...)
	blob = append(blob, s.sep...)
	blob = append(blob, ts...)
	return s.Signer.Sign(blob)
}

// SignString is a convenience wrapper around [TimestampSigner.Sign] for
// string values.
func (s *TimestampSigner) SignString(value string) (string, error) {
	out, err := s.Sign([]byte(value))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Unsign verifies a token produced by [TimestampSigner.Sign] and returns
// the embedded value.
//
// When maxAge is positive, tokens older than maxAge and tokens dated in the
// future both fail with a [*SignatureExpiredError].  maxAge is truncated to
// whole seconds to match the wire format; zero disables the age check.
//
// Failures return [*BadTimeSignatureError] (or the expired subtype), whose
// Payload and DateSigned fields carry whatever could be recovered from the
// token even when the signature itself was invalid.
func (s *TimestampSigner) Unsign(signed []byte, maxAge time.Duration) ([]byte, error) {
	value, _, err := s.UnsignWithTime(signed, maxAge)
	return value, err
}

// UnsignWithTime is [TimestampSigner.Unsign] plus the recovered signing
// time.
func (s *TimestampSigner) UnsignWithTime(signed []byte, maxAge time.Duration) ([]byte, time.Time, error) {
	result, baseErr := s.Signer.Unsign(signed)

	// A signature failure is not propagated yet: the timestamp segment may
	// still be recoverable and is attached to the final error.
	var sigErr *BadSignatureError
	if baseErr != nil {
		if !errors.As(baseErr, &sigErr) {
			return nil, time.Time{}, baseErr
		}
		result = sigErr.Payload
	}

	i := bytes.LastIndex(result, s.sep)
	if i < 0 {
		if sigErr != nil {
			return nil, time.Time{}, sigErr
		}
		return nil, time.Time{}, &BadTimeSignatureError{
			BadSignatureError: BadSignatureError{
				Message: "Missing timestamp",
				Payload: cloneBytes(result),
			},
		}
	}
	value, tsBytes := result[:i], result[i+len(s.sep):]

	var (
		ts     uint64
		haveTS bool
	)
	if raw, err := Base64Decode(tsBytes); err == nil {
		if n, err := BytesToInt(raw); err == nil {
			ts, haveTS = n, true
		}
	}

	if sigErr != nil {
		badTime := &BadTimeSignatureError{
			BadSignatureError: BadSignatureError{
				Message: sigErr.Message,
				Payload: cloneBytes(value),
			},
		}
		if haveTS {
			date, err := timestampToTime(ts)
			if err != nil {
				badTime.Message = "Malformed timestamp"
				return nil, time.Time{}, badTime
			}
			badTime.DateSigned = date
		}
		return nil, time.Time{}, badTime
	}

	if !haveTS {
		return nil, time.Time{}, &BadTimeSignatureError{
			BadSignatureError: BadSignatureError{
				Message: "Malformed timestamp",
				Payload: cloneBytes(value),
			},
		}
	}
	date, err := timestampToTime(ts)
	if err != nil {
		return nil, time.Time{}, &BadTimeSignatureError{
			BadSignatureError: BadSignatureError{
				Message: "Malformed timestamp",
				Payload: cloneBytes(value),
			},
		}
	}

	if maxAge > 0 {
		age := int64(s.Timestamp()) - int64(ts)
		maxSeconds := int64(maxAge / time.Second)
		if age > maxSeconds {
			return nil, time.Time{}, &SignatureExpiredError{
				BadTimeSignatureError: BadTimeSignatureError{
					BadSignatureError: BadSignatureError{
						Message: fmt.Sprintf("Signature age %d > %d seconds", age, maxSeconds),
						Payload: cloneBytes(value),
					},
					DateSigned: date,
				},
			}
		}
		if age < 0 {
			return nil, time.Time{}, &SignatureExpiredError{
				BadTimeSignatureError: BadTimeSignatureError{
					BadSignatureError: BadSignatureError{
						Message: fmt.Sprintf("Signature age %d < 0 seconds", age),
						Payload: cloneBytes(value),
					},
					DateSigned: date,
				},
			}
		}
	}

	return cloneBytes(value), date, nil
}

// UnsignString is a convenience wrapper around [TimestampSigner.Unsign] for
// string tokens.
func (s *TimestampSigner) UnsignString(signed string, maxAge time.Duration) (string, error) {
	out, err := s.Unsign([]byte(signed), maxAge)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Validate reports whether signed carries a valid signature and, when
// maxAge is positive, an acceptable age.
func (s *TimestampSigner) Validate(signed []byte, maxAge time.Duration) bool {
	_, err := s.Unsign(signed, maxAge)
	return err == nil
}
