// Package ed25519 binds the Signer and Verifier capabilities to Ed25519
// (RFC 8032).
//
// A KeyPair owns a 32-byte seed and a cached verifying key; signing is
// deterministic in (seed, message) and consumes no randomness. Verification
// lives on PublicKey alone, so any holder of the 32 public bytes can verify.
package ed25519

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"trustcore"
	"trustcore/internal/memzero"
	"trustcore/random"
)

const (
	// SeedSize is the private seed length.
	SeedSize = 32
	// PublicKeySize is the encoded public key length.
	PublicKeySize = 32
	// SignatureSize is the encoded signature length.
	SignatureSize = 64
)

// ErrVerification is the single observable outcome for a signature that does
// not check out, whether malformed, wrong length or simply not matching.
var ErrVerification = errors.New("ed25519: signature verification failed")

// Signature is a detached Ed25519 signature. It has no validity on its own;
// only the (message, public key) pair it was produced against gives it
// meaning.
type Signature [SignatureSize]byte

func (s Signature) Slice() []byte { return s[:] }

// ParseSignature copies b into a Signature. A wrong-length input reports
// ErrVerification, not a distinct shape error, so callers cannot distinguish
// malformed from mismatched.
func ParseSignature(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, ErrVerification
	}
	copy(s[:], b)
	return s, nil
}

// PublicKey is an Ed25519 verifying key.
type PublicKey [PublicKeySize]byte

func (p PublicKey) Slice() []byte { return p[:] }

// ParsePublicKey copies b into a PublicKey, rejecting any other length.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var p PublicKey
	if len(b) != PublicKeySize {
		return p, fmt.Errorf("ed25519: public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	copy(p[:], b)
	return p, nil
}

// Verify reports whether sig is a valid signature of message under p.
func (p PublicKey) Verify(message []byte, sig Signature) error {
	if !ed25519.Verify(ed25519.PublicKey(p[:]), message, sig[:]) {
		return ErrVerification
	}
	return nil
}

// KeyPair is an Ed25519 signing key. The public key is derived once at
// construction and cached, so Public returns the same value for the life of
// the pair.
type KeyPair struct {
	priv ed25519.PrivateKey
	pub  PublicKey
}

// Generate draws a 32-byte seed from the process entropy source and derives
// the pair from it.
func Generate() (*KeyPair, error) {
	seed, err := random.Bytes(SeedSize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed)
	return FromSeed(seed)
}

// FromSeed derives the pair deterministically from a 32-byte seed. It is the
// import counterpart of Seed.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("ed25519: seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	var pub PublicKey
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	return &KeyPair{priv: priv, pub: pub}, nil
}

// Public returns the cached verifying key.
func (kp *KeyPair) Public() PublicKey { return kp.pub }

// Seed returns a copy of the secret seed, for export to a key store one
// layer up. Wipe the copy when done.
func (kp *KeyPair) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, kp.priv.Seed())
	return seed
}

// Sign returns the deterministic signature of message. It fails only on
// internal error; every byte sequence is a valid message.
func (kp *KeyPair) Sign(message []byte) (Signature, error) {
	var sig Signature
	copy(sig[:], ed25519.Sign(kp.priv, message))
	return sig, nil
}

// Verify delegates to the public key.
func (kp *KeyPair) Verify(message []byte, sig Signature) error {
	return kp.pub.Verify(message, sig)
}

// Zeroize wipes the private key in place. The pair must not be used after.
func (kp *KeyPair) Zeroize() {
	memzero.Zero(kp.priv)
}

var (
	_ trustcore.Signer[Signature]   = (*KeyPair)(nil)
	_ trustcore.Verifier[Signature] = PublicKey{}
	_ trustcore.Verifier[Signature] = (*KeyPair)(nil)
)
