package signing

import (
	"bytes"
	"crypto/hmac"
	"fmt"
	"hash"
)

// base64Alphabet lists every character that can appear in an unpadded or
// padded base64url encoding.  The separator must avoid all of them so that
// splitting a token on its rightmost separator is unambiguous.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="

// Signer signs and verifies byte values.  It appends a base64url-encoded
// MAC after the value, delimited by a separator:
//
//	value.signature
//
// Construct with [New]; the zero value is not usable.  A Signer is immutable
// after construction and safe for concurrent use.
type Signer struct {
	// secretKeys holds the signing key first, followed by any previous keys
	// accepted during verification.
	secretKeys    [][]byte
	salt          []byte
	sep           []byte
	keyDerivation KeyDerivation
	digest        func() hash.Hash
	algorithm     Algorithm
}

// New creates a [Signer] for the given secret key.
//
// Defaults: salt "itsdangerous.Signer", separator ".", key derivation
// [KeyDerivationDjangoConcat], digest [DigestSHA1], HMAC signing.  All of
// these are part of the itsdangerous wire-format compatibility contract;
// override them with [Option] values when compatibility is not needed.
//
// Construction fails with [ErrEmptySecretKey], [ErrInvalidSeparator],
// [ErrUnknownKeyDerivation], or [ErrUnknownDigest] on invalid configuration.
func New(secretKey []byte, opts ...Option) (*Signer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return newSigner(secretKey, cfg)
}

// newSigner performs the shared construction and validation for [New] and
// [NewTimestampSigner].
func newSigner(secretKey []byte, cfg config) (*Signer, error) {
	if len(secretKey) == 0 {
		return nil, ErrEmptySecretKey
	}
	if err := validateSeparator(cfg.sep); err != nil {
		return nil, err
	}
	if err := ValidateKeyDerivation(cfg.keyDerivation); err != nil {
		return nil, err
	}
	digest, err := LookupDigest(cfg.digestMethod)
	if err != nil {
		return nil, err
	}

	alg := cfg.algorithm
	if alg == nil {
		alg = NewHMACAlgorithm(digest)
	}

	keys := make([][]byte, 0, 1+len(cfg.previousKeys))
	keys = append(keys, cloneBytes(secretKey))
	keys = append(keys, cfg.previousKeys...)

	return &Signer{
		secretKeys:    keys,
		salt:          cloneBytes(cfg.salt),
		sep:           cloneBytes(cfg.sep),
		keyDerivation: cfg.keyDerivation,
		digest:        digest,
		algorithm:     alg,
	}, nil
}

// validateSeparator returns a non-nil error when sep is empty or intersects
// the base64url alphabet.
func validateSeparator(sep []byte) error {
	if len(sep) == 0 {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidSeparator)
	}
	if bytes.ContainsAny(sep, base64Alphabet) {
		return fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
	}
	return nil
}

// DeriveKey returns the MAC key derived from the current (signing) secret
// per the configured [KeyDerivation].
func (s *Signer) DeriveKey() []byte {
	return s.deriveKeyFrom(s.secretKeys[0])
}

// deriveKeyFrom derives the MAC key for one candidate secret.
func (s *Signer) deriveKeyFrom(secret []byte) []byte {
	switch s.keyDerivation {
	case KeyDerivationConcat:
		h := s.digest()
		h.Write(s.salt)
		h.Write(secret)
		return h.Sum(nil)
	case KeyDerivationDjangoConcat:
		h := s.digest()
		h.Write(s.salt)
		h.Write([]byte("signer"))
		h.Write(secret)
		return h.Sum(nil)
	case KeyDerivationHMAC:
		mac := hmac.New(s.digest, secret)
		mac.Write(s.salt)
		return mac.Sum(nil)
	case KeyDerivationNone:
		return cloneBytes(secret)
	}
	// Unreachable: the derivation mode is validated at construction.
	panic("signing: unvalidated key derivation " + string(s.keyDerivation))
}

// Signature returns the base64url-encoded signature of value under the
// current secret.
func (s *Signer) Signature(value []byte) ([]byte, error) {
	raw, err := s.algorithm.Signature(s.DeriveKey(), value)
	if err != nil {
		return nil, err
	}
	return Base64Encode(raw), nil
}

// Sign returns value followed by the separator and its signature.
func (s *Signer) Sign(value []byte) ([]byte, error) {
	sig, err := s.Signature(value)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(value)+len(s.sep)+len(sig))
	out = append(out, value...)
	out = append(out, s.sep...)
	out = append(out, sig...)
	return out, nil
}

// SignString is a convenience wrapper around [Signer.Sign] for string values.
func (s *Signer) SignString(value string) (string, error) {
	out, err := s.Sign([]byte(value))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// VerifySignature reports whether sig is a valid base64url-encoded
// signature of value under any configured secret key.  The current key is
// tried first, then previous keys in registration order; comparison is
// constant time per key.
func (s *Signer) VerifySignature(value, sig []byte) bool {
	raw, err := Base64Decode(sig)
	if err != nil {
		return false
	}
	for _, secret := range s.secretKeys {
		if s.algorithm.Verify(s.deriveKeyFrom(secret), value, raw) {
			return true
		}
	}
	return false
}

// Unsign verifies the signature of a token produced by [Signer.Sign] and
// returns the embedded value.
//
// Failures return a [*BadSignatureError] whose Payload field carries the
// unverified value (or the whole token when no separator was found) for
// diagnostics.
func (s *Signer) Unsign(signed []byte) ([]byte, error) {
	i := bytes.LastIndex(signed, s.sep)
	if i < 0 {
		return nil, &BadSignatureError{
			Message: fmt.Sprintf("no %q found in value", s.sep),
			Payload: cloneBytes(signed),
		}
	}
	// Rightmost split: the value may legitimately contain the separator,
	// the base64url signature cannot.
	value, sig := signed[:i], signed[i+len(s.sep):]
	if !s.VerifySignature(value, sig) {
		return nil, &BadSignatureError{
			Message: fmt.Sprintf("signature %q does not match", sig),
			Payload: cloneBytes(value),
		}
	}
	return cloneBytes(value), nil
}

// UnsignString is a convenience wrapper around [Signer.Unsign] for string
// tokens.
func (s *Signer) UnsignString(signed string) (string, error) {
	out, err := s.Unsign([]byte(signed))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Validate reports whether signed carries a valid signature.  Use
// [Signer.Unsign] when the value or the failure reason is needed.
func (s *Signer) Validate(signed []byte) bool {
	_, err := s.Unsign(signed)
	return err == nil
}
