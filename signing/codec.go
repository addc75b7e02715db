package signing

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Base64Encode encodes b as unpadded base64url, the text encoding used for
// signatures and embedded timestamps.  The output length is ceil(4n/3); no
// padding characters are emitted.
func Base64Encode(b []byte) []byte {
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(b)))
	base64.RawURLEncoding.Encode(out, b)
	return out
}

// Base64Decode decodes unpadded base64url data previously produced by
// [Base64Encode].  Malformed input returns a [*BadDataError], which matches
// [ErrBadData] under [errors.Is].
func Base64Decode(b []byte) ([]byte, error) {
	out := make([]byte, base64.RawURLEncoding.DecodedLen(len(b)))
	n, err := base64.RawURLEncoding.Decode(out, b)
	if err != nil {
		return nil, &BadDataError{Message: fmt.Sprintf("invalid base64url-encoded data: %v", err)}
	}
	return out[:n], nil
}

// IntToBytes encodes n as a big-endian byte sequence with all leading zero
// bytes stripped.  Zero encodes to an empty sequence.  This is the minimal
// form used for embedded timestamps.
func IntToBytes(n uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// BytesToInt decodes a big-endian byte sequence previously produced by
// [IntToBytes], conceptually left-padding with zeros to 8 bytes.  An empty
// sequence decodes to zero.  Inputs with more than 8 significant bytes do
// not fit a uint64 and return a [*BadDataError].
//
// Round-trip law: BytesToInt(IntToBytes(n)) == n for every uint64 n.
func BytesToInt(b []byte) (uint64, error) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 8 {
		return 0, &BadDataError{Message: fmt.Sprintf("integer of %d bytes does not fit 64 bits", len(b))}
	}
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// cloneBytes returns a fresh copy of b.  Used so that callers cannot mutate
// key material or payloads held inside a signer, and vice versa.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
