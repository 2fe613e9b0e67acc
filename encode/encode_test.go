package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"trustcore/encode"
	"trustcore/random"
)

const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// RFC 4648 §10 vectors, minus the padding the url-safe unpadded form drops.
func TestKnownVectors(t *testing.T) {
	cases := []struct{ raw, encoded string }{
		{"", ""},
		{"f", "Zg"},
		{"fo", "Zm8"},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg"},
		{"fooba", "Zm9vYmE"},
		{"foobar", "Zm9vYmFy"},
	}
	for _, tc := range cases {
		if got := encode.Base64URL([]byte(tc.raw)); got != tc.encoded {
			t.Fatalf("Base64URL(%q) = %q, want %q", tc.raw, got, tc.encoded)
		}
		got, err := encode.ParseBase64URL(tc.encoded)
		if err != nil {
			t.Fatalf("ParseBase64URL(%q): %v", tc.encoded, err)
		}
		if string(got) != tc.raw {
			t.Fatalf("ParseBase64URL(%q) = %q, want %q", tc.encoded, got, tc.raw)
		}
	}
}

func TestRoundTripAllLengths(t *testing.T) {
	stream := random.NewInsecureDeterministic([]byte("encode round trip"))
	for n := 0; n <= 66; n++ {
		in := make([]byte, n)
		if _, err := stream.Read(in); err != nil {
			t.Fatalf("Read: %v", err)
		}
		out, err := encode.ParseBase64URL(encode.Base64URL(in))
		if err != nil {
			t.Fatalf("round trip failed at length %d: %v", n, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch at length %d", n)
		}
	}
}

func TestOutputAlphabet(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	for _, r := range encode.Base64URL(in) {
		if !strings.ContainsRune(urlSafeAlphabet, r) {
			t.Fatalf("output contains %q, outside the url-safe alphabet", r)
		}
	}
}

func TestRejectsInvalidInput(t *testing.T) {
	cases := []struct{ name, input string }{
		{"padding character", "Zg=="},
		{"standard alphabet plus", "a+b0"},
		{"standard alphabet slash", "a/b0"},
		{"space", "Zm 9v"},
		{"newline", "Zm9v\n"},
		{"impossible length", "A"},
		{"impossible length tail", "Zm9vA"},
		{"non-canonical trailing bits", "QR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := encode.ParseBase64URL(tc.input); !errors.Is(err, encode.ErrDecode) {
				t.Fatalf("want ErrDecode for %q, got %v", tc.input, err)
			}
		})
	}
}

// "QQ" and "QR" decode to the same byte under a lenient decoder; only the
// first is canonical, so only the first may parse.
func TestCanonicalFormIsUnique(t *testing.T) {
	out, err := encode.ParseBase64URL("QQ")
	if err != nil {
		t.Fatalf("ParseBase64URL(QQ): %v", err)
	}
	if !bytes.Equal(out, []byte("A")) {
		t.Fatalf("ParseBase64URL(QQ) = %q, want %q", out, "A")
	}
	if _, err := encode.ParseBase64URL("QR"); !errors.Is(err, encode.ErrDecode) {
		t.Fatalf("want ErrDecode for non-canonical QR, got %v", err)
	}
}
