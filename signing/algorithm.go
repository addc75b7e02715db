package signing

import (
	"crypto/hmac"
	"crypto/subtle"
	"hash"
)

// Algorithm is the strategy that produces and verifies raw (pre-base64)
// signatures over a derived key and a value.  [Signer] uses [HMACAlgorithm]
// by default; supply a custom implementation with [WithAlgorithm].
//
// All implementations must be safe for concurrent use by multiple
// goroutines, and Verify must compare in constant time.
type Algorithm interface {
	// Signature computes the raw signature of value under key.
	Signature(key, value []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature of value under key.
	// It must return false, never an error, when computation fails.
	Verify(key, value, sig []byte) bool
}

// HMACAlgorithm signs values with HMAC over a configurable digest.
type HMACAlgorithm struct {
	digest func() hash.Hash
}

// NewHMACAlgorithm returns an HMAC signing algorithm using the given hash
// constructor, e.g. sha1.New or sha256.New.
func NewHMACAlgorithm(digest func() hash.Hash) *HMACAlgorithm {
	return &HMACAlgorithm{digest: digest}
}

// Signature computes HMAC(digest, key, value).
func (a *HMACAlgorithm) Signature(key, value []byte) ([]byte, error) {
	mac := hmac.New(a.digest, key)
	mac.Write(value)
	return mac.Sum(nil), nil
}

// Verify recomputes the signature and compares it to sig in constant time.
func (a *HMACAlgorithm) Verify(key, value, sig []byte) bool {
	expected, err := a.Signature(key, value)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(expected, sig) == 1
}

// NoneAlgorithm provides an empty signature.  Tokens signed with it carry no
// integrity protection at all; it exists for testing and for protocols that
// layer their own authentication on top.
type NoneAlgorithm struct{}

// Signature returns an empty signature.
func (NoneAlgorithm) Signature(key, value []byte) ([]byte, error) {
	return []byte{}, nil
}

// Verify reports whether sig is the empty signature.
func (NoneAlgorithm) Verify(key, value, sig []byte) bool {
	return subtle.ConstantTimeCompare(sig, []byte{}) == 1
}
