// Package x25519 binds the KeyAgreement capability to Curve25519
// Diffie-Hellman (RFC 7748).
//
// Private scalars are clamped at construction, before first use. Degenerate
// peer keys — the identity point and the other low-order points — are
// rejected rather than silently producing an all-zero secret.
package x25519

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"trustcore"
	"trustcore/internal/memzero"
	"trustcore/random"
)

const (
	// SeedSize is the private scalar length.
	SeedSize = 32
	// PublicKeySize is the encoded public key length.
	PublicKeySize = 32
)

// ErrInvalidPublicKey is returned when the peer's public key is not a usable
// point on the curve, including the identity and low-order points.
var ErrInvalidPublicKey = errors.New("x25519: invalid public key")

// PublicKey is a Curve25519 public key.
type PublicKey [PublicKeySize]byte

func (p PublicKey) Slice() []byte { return p[:] }

// ParsePublicKey copies b into a PublicKey, rejecting any other length.
// Degenerate points are only detected at DiffieHellman time.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var p PublicKey
	if len(b) != PublicKeySize {
		return p, fmt.Errorf("x25519: public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	copy(p[:], b)
	return p, nil
}

// KeyPair is an X25519 key-agreement key. The private scalar is held clamped
// and the public point is derived once at construction.
type KeyPair struct {
	priv [SeedSize]byte
	pub  PublicKey
}

// Generate draws a 32-byte scalar from the process entropy source, clamps it
// and derives the public point.
func Generate() (*KeyPair, error) {
	seed, err := random.Bytes(SeedSize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed)
	return FromSeed(seed)
}

// FromSeed builds the pair from a 32-byte scalar, clamping it per RFC 7748.
// It is the import counterpart of Secret.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("x25519: seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	var kp KeyPair
	copy(kp.priv[:], seed)
	clamp(&kp.priv)
	pub, err := curve25519.X25519(kp.priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("x25519: derive public key: %w", err)
	}
	copy(kp.pub[:], pub)
	return &kp, nil
}

// Public returns the cached public point.
func (kp *KeyPair) Public() PublicKey { return kp.pub }

// Secret returns a copy of the clamped private scalar, for export to a key
// store one layer up. Wipe the copy when done.
func (kp *KeyPair) Secret() []byte {
	s := make([]byte, SeedSize)
	copy(s, kp.priv[:])
	return s
}

// DiffieHellman derives the 32-byte shared secret from this pair's scalar
// and the peer's public point. Callers are expected to run the result
// through a KDF before using it as a symmetric key.
func (kp *KeyPair) DiffieHellman(theirPublic PublicKey) (trustcore.SharedSecret, error) {
	var out trustcore.SharedSecret
	secret, err := curve25519.X25519(kp.priv[:], theirPublic[:])
	if err != nil {
		// Low-order or identity point: the only failure mode.
		return out, ErrInvalidPublicKey
	}
	copy(out[:], secret)
	return out, nil
}

// Zeroize wipes the private scalar in place. The pair must not be used after.
func (kp *KeyPair) Zeroize() {
	memzero.Zero(kp.priv[:])
}

// clamp applies the RFC 7748 scalar clamping in place.
func clamp(k *[SeedSize]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

var _ trustcore.KeyAgreement[PublicKey] = (*KeyPair)(nil)
