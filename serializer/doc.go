// Package serializer signs structured values instead of raw bytes, layering
// a payload codec (JSON by default) over the signers of
// [github.com/hasbyte1/go-itsdangerous/signing].
//
// # Architecture
//
// Four layers compose bottom-up, each usable on its own:
//
//   - [signing.Signer] / [signing.TimestampSigner] sign raw bytes.
//   - A [Codec] turns structured values into payload bytes and back
//     ([JSONCodec] by default).
//   - An optional [Transform] rewrites payload bytes before signing and
//     after verification; [URLSafeTransform] compresses and base64url-encodes
//     so tokens survive URLs, cookies, and email links unescaped.
//   - [Serializer] and [TimedSerializer] tie the layers together.
//
// The URL-safe behavior is a single shared [Transform] value injected into
// either serializer flavor through [NewURLSafe] / [NewURLSafeTimed]; both
// flavors delegate to the same implementation.
//
// # Quick start
//
//	s, err := serializer.NewURLSafe([]byte("secret key"), serializer.WithSalt("auth"))
//	if err != nil { log.Fatal(err) }
//
//	token, _ := s.Stringify(map[string]any{"id": 5})
//	value, err := s.Parse(token) // map[string]any{"id": float64(5)}, or typed error
//
// Timed tokens expire after a caller-supplied age:
//
//	ts, _ := serializer.NewURLSafeTimed([]byte("secret key"))
//	token, _ := ts.Stringify("reset-password")
//	_, err = ts.Parse(token, time.Hour) // *signing.SignatureExpiredError after an hour
//
// # Trust boundary
//
// Parse only succeeds after signature verification, so its result can be
// trusted as far as the secret key is trusted.  [Serializer.ParseUnsafe]
// deliberately skips that guarantee to let callers inspect a token without
// trusting it; restrict it to payload formats without code-execution risk,
// such as JSON.
//
// # Portability
//
// Tokens are byte-compatible with itsdangerous's URLSafeSerializer and
// URLSafeTimedSerializer given the same secret, salt, and digest, so they
// can be minted in Go and consumed in Python or vice versa.
package serializer
