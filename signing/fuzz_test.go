package signing_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-itsdangerous/signing"
)

// FuzzUnsign ensures that Signer.Unsign never panics on arbitrary input and
// that every value the signer produces round-trips.
//
// Run with: go test -fuzz=FuzzUnsign ./signing/
func FuzzUnsign(f *testing.F) {
	signer, err := signing.New([]byte("fuzz secret"))
	if err != nil {
		f.Fatal(err)
	}

	seeds := [][]byte{
		[]byte(""),
		[]byte("."),
		[]byte("no separator"),
		[]byte("value.forged-signature"),
		[]byte("a.b.c.d"),
	}
	for _, v := range []string{"", "x", "some longer value", "dots.in.value"} {
		token, _ := signer.SignString(v)
		seeds = append(seeds, []byte(token))
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, token []byte) {
		// Must not panic; a typed error is acceptable.
		_, _ = signer.Unsign(token)
	})
}

// FuzzSignUnsign ensures that any value, including ones containing the
// separator or arbitrary binary, survives a sign/unsign round trip.
func FuzzSignUnsign(f *testing.F) {
	signer, err := signing.New([]byte("fuzz secret"))
	if err != nil {
		f.Fatal(err)
	}
	tsSigner, err := signing.NewTimestampSigner([]byte("fuzz secret"))
	if err != nil {
		f.Fatal(err)
	}

	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte("with.separators..."))
	f.Add([]byte{0x00, 0xff, 0x2e, 0x80})

	f.Fuzz(func(t *testing.T, value []byte) {
		token, err := signer.Sign(value)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		got, err := signer.Unsign(token)
		if err != nil {
			t.Fatalf("Unsign failed after Sign succeeded: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Fatalf("round-trip mismatch for input len=%d", len(value))
		}

		tsToken, err := tsSigner.Sign(value)
		if err != nil {
			t.Fatalf("timestamped Sign: %v", err)
		}
		got, err = tsSigner.Unsign(tsToken, 0)
		if err != nil {
			t.Fatalf("timestamped Unsign failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Fatalf("timestamped round-trip mismatch for input len=%d", len(value))
		}
	})
}

// FuzzIntCodec checks the integer codec round-trip law over the full uint64
// range.
func FuzzIntCodec(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(192))
	f.Add(uint64(1) << 53)
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, n uint64) {
		got, err := signing.BytesToInt(signing.IntToBytes(n))
		if err != nil {
			t.Fatalf("BytesToInt(IntToBytes(%d)): %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip of %d = %d", n, got)
		}
	})
}
