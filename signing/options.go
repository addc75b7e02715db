package signing

import "time"

// Option is a functional option for configuring a [Signer] or
// [TimestampSigner].  Options are applied at construction time via [New] /
// [NewTimestampSigner]; a constructed signer is immutable.
type Option func(*config)

// config holds the optional construction-time configuration shared by both
// signer types.
type config struct {
	salt          []byte
	sep           []byte
	keyDerivation KeyDerivation
	digestMethod  DigestMethod
	algorithm     Algorithm
	previousKeys  [][]byte
	clock         func() time.Time
}

// defaultSalt scopes key derivation when no salt is configured.  The literal
// value is part of the itsdangerous wire compatibility contract.
const defaultSalt = "itsdangerous.Signer"

// defaultSeparator delimits value, timestamp, and signature segments.
const defaultSeparator = "."

func defaultConfig() config {
	return config{
		salt:          []byte(defaultSalt),
		sep:           []byte(defaultSeparator),
		keyDerivation: KeyDerivationDjangoConcat,
		digestMethod:  DigestSHA1,
	}
}

// WithSalt sets the key-derivation salt, scoping the signer to a usage
// context such as "auth" or "password-reset".  Tokens signed under one salt
// never verify under another (except with [KeyDerivationNone]).
func WithSalt(salt string) Option {
	return func(c *config) {
		c.salt = []byte(salt)
	}
}

// WithSeparator sets the separator between token segments.  The separator
// must not contain any character of the base64url alphabet (A-Za-z0-9-_=),
// otherwise construction fails with [ErrInvalidSeparator].
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.sep = []byte(sep)
	}
}

// WithKeyDerivation sets how the secret key and salt are combined into the
// MAC key.  The default is [KeyDerivationDjangoConcat].
func WithKeyDerivation(kd KeyDerivation) Option {
	return func(c *config) {
		c.keyDerivation = kd
	}
}

// WithDigestMethod sets the hash algorithm used for key derivation and the
// default HMAC algorithm.  The default is [DigestSHA1] for token-format
// compatibility; prefer [DigestSHA256] or stronger when compatibility with
// existing tokens is not required.
func WithDigestMethod(d DigestMethod) Option {
	return func(c *config) {
		c.digestMethod = d
	}
}

// WithAlgorithm overrides the signing algorithm.  When set, the configured
// digest method is still used for key derivation but not for signing.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		c.algorithm = a
	}
}

// WithPreviousKeys registers older secret keys that are still accepted
// during verification.  This supports key-rotation workflows: sign all new
// tokens with the current secret while tokens signed with retired secrets
// remain valid.
//
// Verification tries the current key first, then each previous key in the
// order given.  Previous keys are never used for signing.
//
//	signer, err := signing.New(currentKey, signing.WithPreviousKeys(oldKey1, oldKey2))
func WithPreviousKeys(keys ...[]byte) Option {
	return func(c *config) {
		for _, k := range keys {
			c.previousKeys = append(c.previousKeys, cloneBytes(k))
		}
	}
}

// WithClock overrides the time source of a [TimestampSigner], mainly for
// tests.  It has no effect on a plain [Signer].
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.clock = now
	}
}
