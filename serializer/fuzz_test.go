package serializer_test

import (
	"testing"

	"github.com/hasbyte1/go-itsdangerous/serializer"
)

// FuzzParse ensures that Serializer.Parse never panics on arbitrary tokens
// and always returns either a value or a typed error.
//
// Run with: go test -fuzz=FuzzParse ./serializer/
func FuzzParse(f *testing.F) {
	s, err := serializer.NewURLSafe([]byte("fuzz secret"))
	if err != nil {
		f.Fatal(err)
	}

	seeds := []string{
		"",
		".",
		"..",
		"no separator",
		"eyJpZCI6NX0.forged",
		".not-zlib.forged",
	}
	for _, v := range []any{"x", map[string]any{"id": 5}, []any{nil, true}} {
		token, _ := s.Stringify(v)
		seeds = append(seeds, token)
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, token string) {
		// Must not panic; error is acceptable.
		_, _ = s.Parse(token)
		_, _, err := s.ParseUnsafe(token)
		if err != nil {
			t.Fatalf("ParseUnsafe leaked an error for a decode failure: %v", err)
		}
	})
}

// FuzzURLSafeTransform checks that Encode∘Decode is the identity for any
// payload, compressed or not.
func FuzzURLSafeTransform(f *testing.F) {
	var tr serializer.URLSafeTransform

	f.Add([]byte(""))
	f.Add([]byte("{\"id\":5}"))
	f.Add([]byte{0x00, 0xff, 0x2e})
	for i := 0; i < 4; i++ {
		f.Add(make([]byte, 1<<(4*i)))
	}

	f.Fuzz(func(t *testing.T, payload []byte) {
		encoded, err := tr.Encode(payload)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, err := tr.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed after Encode succeeded: %v", err)
		}
		if string(got) != string(payload) {
			t.Fatalf("round-trip mismatch for input len=%d", len(payload))
		}
	})
}
