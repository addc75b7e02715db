package serializer_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/hasbyte1/go-itsdangerous/serializer"
	"github.com/hasbyte1/go-itsdangerous/signing"
)

// TestURLSafe_CompatibilityVector pins the full end-to-end token against
// the reference implementation: compact JSON payload, unpadded base64url,
// django-concat SHA-1 signature.
func TestURLSafe_CompatibilityVector(t *testing.T) {
	s, err := serializer.NewURLSafe([]byte("secret key"), serializer.WithSalt("auth"))
	if err != nil {
		t.Fatal(err)
	}
	value := map[string]any{"id": 5, "name": "itsdangerous"}
	token, err := s.Stringify(value)
	if err != nil {
		t.Fatal(err)
	}
	const want = "eyJpZCI6NSwibmFtZSI6Iml0c2Rhbmdlcm91cyJ9.6YP6T0BaO67XP--9UzTrmurXSmg"
	if token != want {
		t.Fatalf("token = %q, want %q", token, want)
	}

	got, err := s.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	wantValue := map[string]any{"id": float64(5), "name": "itsdangerous"}
	if !reflect.DeepEqual(got, wantValue) {
		t.Fatalf("got %#v, want %#v", got, wantValue)
	}
}

func TestURLSafe_TokenAlphabet(t *testing.T) {
	s, err := serializer.NewURLSafe([]byte("secret key"))
	if err != nil {
		t.Fatal(err)
	}
	values := []any{
		"short",
		map[string]any{"html": "<a href=\"https://example.com/?a=1&b=2\">&amp;</a>"},
		strings.Repeat("compressible ", 200),
	}
	const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_."
	for _, v := range values {
		token, err := s.Stringify(v)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range token {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("token contains %q outside the URL-safe alphabet: %q", r, token)
			}
		}
	}
}

// TestURLSafe_CompressionTransparency checks the round trip on both sides
// of the compression decision: a tiny payload that stays uncompressed and a
// large repetitive one that compresses.
func TestURLSafe_CompressionTransparency(t *testing.T) {
	s, err := serializer.NewURLSafe([]byte("secret key"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("tiny payload stays uncompressed", func(t *testing.T) {
		token, err := s.Stringify("x")
		if err != nil {
			t.Fatal(err)
		}
		if strings.HasPrefix(token, ".") {
			t.Fatalf("tiny payload was marked compressed: %q", token)
		}
		got, err := s.Parse(token)
		if err != nil {
			t.Fatal(err)
		}
		if got != "x" {
			t.Fatalf("got %#v", got)
		}
	})

	t.Run("repetitive payload compresses", func(t *testing.T) {
		value := strings.Repeat("itsdangerous ", 300)
		token, err := s.Stringify(value)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(token, ".") {
			t.Fatalf("large repetitive payload was not compressed: %.40q...", token)
		}
		// Compression has to pay for itself on the wire.
		uncompressedLen := len(signing.Base64Encode([]byte("\"" + value + "\"")))
		if len(token) >= uncompressedLen {
			t.Fatalf("compressed token (%d) not smaller than raw encoding (%d)", len(token), uncompressedLen)
		}
		got, err := s.Parse(token)
		if err != nil {
			t.Fatal(err)
		}
		if got != value {
			t.Fatal("round-trip mismatch for compressed payload")
		}
	})
}

// TestURLSafe_DecodeFailuresAreDistinguishable checks that base64 failures
// and decompression failures surface as distinct payload errors.
func TestURLSafe_DecodeFailuresAreDistinguishable(t *testing.T) {
	secret := []byte("secret key")
	s, err := serializer.NewURLSafe(secret)
	if err != nil {
		t.Fatal(err)
	}
	// Sign raw payloads under the serializer's salt so only the payload
	// stage can fail.
	signer, err := signing.New(secret, signing.WithSalt("itsdangerous"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		payload  string
		wantHint string
	}{
		{"invalid base64", "!!definitely not base64!!", "base64"},
		{"marked compressed but not zlib", "." + string(signing.Base64Encode([]byte("not a zlib stream"))), "decompress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := signer.SignString(tt.payload)
			if err != nil {
				t.Fatal(err)
			}
			_, err = s.Parse(token)
			if !errors.Is(err, serializer.ErrBadPayload) {
				t.Fatalf("errors.Is(%v, ErrBadPayload) = false", err)
			}
			if !strings.Contains(err.Error(), tt.wantHint) {
				t.Fatalf("message %q does not mention %q", err, tt.wantHint)
			}
		})
	}
}

func TestURLSafeTimed_RoundTripAndExpiry(t *testing.T) {
	clock := newTestClock()
	s, err := serializer.NewURLSafeTimed([]byte("secret key"),
		serializer.WithSignerOptions(signing.WithClock(clock.Now)))
	if err != nil {
		t.Fatal(err)
	}

	value := map[string]any{"payload": strings.Repeat("compress me ", 100)}
	token, err := s.Stringify(value)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Parse(token, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"payload": strings.Repeat("compress me ", 100)}
	if !reflect.DeepEqual(got, want) {
		t.Fatal("round-trip mismatch")
	}

	clock.now = clock.now.Add(2 * time.Minute)
	if _, err := s.Parse(token, time.Minute); !errors.Is(err, signing.ErrSignatureExpired) {
		t.Fatalf("errors.Is(%v, ErrSignatureExpired) = false", err)
	}
}

// TestURLSafe_SharedTransform verifies both URL-safe flavors produce
// interchangeable payload encodings: a timed token's inner value is the
// same encoding a plain URL-safe serializer produces.
func TestURLSafe_SharedTransform(t *testing.T) {
	secret := []byte("secret key")
	plain, err := serializer.NewURLSafe(secret, serializer.WithSalt("shared"))
	if err != nil {
		t.Fatal(err)
	}
	timed, err := serializer.NewURLSafeTimed(secret, serializer.WithSalt("shared"))
	if err != nil {
		t.Fatal(err)
	}

	value := strings.Repeat("both flavors ", 100)
	plainToken, _ := plain.Stringify(value)
	timedToken, _ := timed.Stringify(value)

	plainPayload := plainToken[:strings.LastIndex(plainToken, ".")]
	// value.timestamp.signature: strip the two trailing segments.
	inner := timedToken[:strings.LastIndex(timedToken, ".")]
	timedPayload := inner[:strings.LastIndex(inner, ".")]
	if plainPayload != timedPayload {
		t.Fatalf("payload encodings differ:\n%q\n%q", plainPayload, timedPayload)
	}
}
