package serializer

import "github.com/hasbyte1/go-itsdangerous/signing"

// Option is a functional option for configuring a [Serializer] or
// [TimedSerializer].  Options are applied at construction time; a
// constructed serializer is immutable.
type Option func(*config)

// config holds the optional construction-time configuration.
type config struct {
	salt       []byte
	codec      Codec
	transform  Transform
	signerOpts []signing.Option
}

// defaultSalt scopes a serializer's key derivation.  Distinct from the
// signing package's default on purpose: a raw Signer and a Serializer using
// the same secret must not be able to verify each other's tokens.
const defaultSalt = "itsdangerous"

func defaultConfig() config {
	return config{
		salt:  []byte(defaultSalt),
		codec: JSONCodec{},
	}
}

// WithSalt sets the key-derivation salt, scoping the serializer to a usage
// context such as "auth" or "activate-account".
func WithSalt(salt string) Option {
	return func(c *config) {
		c.salt = []byte(salt)
	}
}

// WithCodec replaces the default [JSONCodec].
func WithCodec(codec Codec) Option {
	return func(c *config) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithTransform installs a payload [Transform] applied after marshaling and
// reversed before unmarshaling.  [NewURLSafe] and [NewURLSafeTimed] use
// this to install [URLSafeTransform].
func WithTransform(t Transform) Option {
	return func(c *config) {
		c.transform = t
	}
}

// WithSignerOptions forwards extra configuration to every signer the
// serializer constructs, e.g. a digest override or rotation keys:
//
//	s, err := serializer.New(secret,
//	    serializer.WithSignerOptions(
//	        signing.WithDigestMethod(signing.DigestSHA256),
//	        signing.WithPreviousKeys(oldSecret),
//	    ))
//
// A [signing.WithSalt] passed here is overridden by the serializer's own
// salt handling.
func WithSignerOptions(opts ...signing.Option) Option {
	return func(c *config) {
		c.signerOpts = append(c.signerOpts, opts...)
	}
}
