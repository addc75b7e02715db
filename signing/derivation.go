package signing

import "fmt"

// KeyDerivation selects how a long-lived secret key and a context salt are
// combined into the actual MAC key.  The string values match the keyword
// names accepted by the Python original, so configuration read from shared
// config files ports unchanged.
type KeyDerivation string

const (
	// KeyDerivationConcat derives hash(salt || secret).
	KeyDerivationConcat KeyDerivation = "concat"

	// KeyDerivationDjangoConcat derives hash(salt || "signer" || secret),
	// the scheme Django uses for its signing facility.  This is the default.
	KeyDerivationDjangoConcat KeyDerivation = "django-concat"

	// KeyDerivationHMAC derives HMAC(secret, salt): the secret is the MAC
	// key and the salt is the message.
	KeyDerivationHMAC KeyDerivation = "hmac"

	// KeyDerivationNone uses the secret unchanged.  The salt is ignored, so
	// two signers differing only in salt can verify each other's tokens.
	KeyDerivationNone KeyDerivation = "none"
)

// ValidateKeyDerivation returns a non-nil error if kd is not a recognised
// derivation mode.
func ValidateKeyDerivation(kd KeyDerivation) error {
	switch kd {
	case KeyDerivationConcat, KeyDerivationDjangoConcat, KeyDerivationHMAC, KeyDerivationNone:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKeyDerivation, kd)
}
