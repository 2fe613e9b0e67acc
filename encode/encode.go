// Package encode is the canonical byte-to-text transform for cross-boundary
// interchange: base64url per RFC 4648 §5, without padding.
//
// The transform is lossless and one-to-one: every byte sequence has exactly
// one encoding, and every valid encoding decodes to exactly one byte
// sequence. Decoding is strict — characters outside the url-safe alphabet,
// impossible lengths and non-zero trailing bits all fail rather than being
// silently accepted.
package encode

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrDecode is returned for any input that is not a canonical base64url
// encoding of some byte sequence.
var ErrDecode = errors.New("encode: invalid base64url input")

var b64 = base64.RawURLEncoding.Strict()

// Base64URL encodes b using the url-safe alphabet A-Za-z0-9-_ with no
// padding. The empty input encodes to the empty string.
func Base64URL(b []byte) string {
	return b64.EncodeToString(b)
}

// ParseBase64URL decodes a string produced by Base64URL. It holds the
// round-trip law ParseBase64URL(Base64URL(b)) == b for every b.
func ParseBase64URL(s string) ([]byte, error) {
	// The standard decoder skips \r and \n; canonical input has neither.
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrDecode
	}
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, ErrDecode
	}
	return b, nil
}
