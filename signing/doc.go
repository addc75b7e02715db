// Package signing provides cryptographic signing of byte values, modelled
// after the signer stack of Python's itsdangerous library.  A [Signer] turns
// a value into a tamper-evident token of the form `value<sep>signature`; a
// [TimestampSigner] additionally embeds the signing time so tokens can be
// expired after a maximum age.
//
// Signing proves integrity, not confidentiality: the value travels in the
// clear inside the token and anyone can read it.  Only the holder of the
// secret key can produce a signature that verifies.
//
// # Token format
//
// Tokens are ASCII-safe byte sequences.  Signatures (and embedded timestamps)
// are unpadded base64url, so the only characters a token may contain beyond
// the value itself are `A-Za-z0-9-_` plus the configured separator:
//
//	value.signature                       // Signer
//	value.timestamp.signature             // TimestampSigner
//
// The on-wire format is byte-compatible with itsdangerous, so tokens can be
// exchanged with Python services using the same secret, salt, and digest.
//
// # Quick start
//
//	signer, err := signing.New([]byte("secret key"))
//	if err != nil { log.Fatal(err) }
//
//	token, _ := signer.SignString("my value")
//	value, err := signer.UnsignString(token)  // "my value", or *BadSignatureError
//
// # Salts
//
// The salt scopes key derivation to a usage context.  Two signers with the
// same secret but different salts ("auth" vs "password-reset") cannot verify
// each other's tokens, which prevents a token minted for one purpose from
// being replayed in another.  The salt is not a password-hashing salt and
// does not need to be secret.
//
// # Key rotation
//
// Use [WithPreviousKeys] to keep verifying tokens signed with older secrets
// while all new tokens are signed with the current one.  Verification tries
// the current key first, then each previous key in the order given.
//
// # Security notes
//
//   - Signature comparison is constant time (crypto/hmac, crypto/subtle).
//   - The default digest is SHA-1 for compatibility with the itsdangerous
//     token format.  This is a legacy default, not a recommendation; use
//     [WithDigestMethod] with [DigestSHA256] or stronger for new systems
//     that do not need to interoperate with existing tokens.
//   - A [Signer] is immutable after construction and safe for concurrent
//     use by multiple goroutines.
//
// # Portability
//
// The [Signer] and [TimestampSigner] APIs map 1-to-1 to the classes of the
// Python original; the functional options stand in for keyword arguments.
package signing
