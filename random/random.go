// Package random is the process-wide secure entropy source.
//
// All functions draw from crypto/rand, which is internally safe for
// concurrent callers; no locking is needed on top. No deterministic seeding
// path exists here for production use — the only seeded construct is the
// loudly named InsecureDeterministic stream for fixtures.
package random

import (
	"crypto/rand"
	"fmt"

	"trustcore"
)

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Fill overwrites b with cryptographically secure random bytes.
func Fill(b []byte) error {
	if _, err := rand.Read(b); err != nil {
		return fmt.Errorf("random: %w", err)
	}
	return nil
}

// Key returns a fresh 32-byte AEAD key.
func Key() (*[trustcore.AEADKeySize]byte, error) {
	var k [trustcore.AEADKeySize]byte
	if err := Fill(k[:]); err != nil {
		return nil, err
	}
	return &k, nil
}

// Nonce returns a fresh 12-byte AEAD nonce. Random nonces are safe for
// ChaCha20-Poly1305 only while the message count per key stays far below the
// birthday bound; rotate keys accordingly.
func Nonce() (*[trustcore.AEADNonceSize]byte, error) {
	var n [trustcore.AEADNonceSize]byte
	if err := Fill(n[:]); err != nil {
		return nil, err
	}
	return &n, nil
}
