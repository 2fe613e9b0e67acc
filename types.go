package trustcore

import (
	"encoding/hex"
	"fmt"

	"trustcore/internal/memzero"
)

// Byte-level sizes shared across every implementation and every consumer.
// They must match exactly for cross-runtime interoperability.
const (
	// DigestSize is the output length of every Hasher.
	DigestSize = 32

	// SharedSecretSize is the output length of Diffie-Hellman.
	SharedSecretSize = 32

	// AEADKeySize, AEADNonceSize and AEADTagSize are the fixed AEAD
	// parameters (ChaCha20-Poly1305, IETF sizing).
	AEADKeySize   = 32
	AEADNonceSize = 12
	AEADTagSize   = 16
)

// Digest is a fixed-size hash output. Two equal digests are interchangeable;
// a digest carries no identity beyond its value.
type Digest [DigestSize]byte

func (d Digest) Slice() []byte { return d[:] }

// Hex returns the lowercase hex form, for display and logging.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// ParseDigest copies b into a Digest, rejecting any other length.
func ParseDigest(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, fmt.Errorf("digest: want %d bytes, got %d", DigestSize, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// SharedSecret is raw Diffie-Hellman output. It is ephemeral key material:
// pass it through a KDF before using it as a symmetric key, and wipe it when
// done. This layer performs no derivation.
type SharedSecret [SharedSecretSize]byte

func (s SharedSecret) Slice() []byte { return s[:] }

// Zeroize overwrites the secret in place. Best effort; value copies made
// before the call are not reachable from here.
func (s *SharedSecret) Zeroize() {
	memzero.Zero(s[:])
}
