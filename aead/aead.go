// Package aead binds the AEAD capability to ChaCha20-Poly1305 (RFC 8439,
// IETF sizing: 32-byte key, 12-byte nonce, 16-byte tag).
//
// Nonce reuse under the same key is the one misuse this package cannot
// prevent: two messages sealed under the same (key, nonce) share a keystream,
// and XORing their ciphertexts yields the XOR of their plaintexts. Callers
// own nonce uniqueness; the tests demonstrate the break to pin the contract
// boundary.
package aead

import (
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"trustcore"
)

// ErrAuthentication is returned by Decrypt when the tag does not verify —
// whether the ciphertext, the aad, the nonce or the key is wrong.
var ErrAuthentication = errors.New("aead: message authentication failed")

// ChaCha20Poly1305 implements trustcore.AEAD.
type ChaCha20Poly1305 struct{}

// Encrypt seals plaintext under (key, nonce, aad), appending the 16-byte tag.
// The plaintext's backing storage is reused when its capacity allows.
func (ChaCha20Poly1305) Encrypt(key *[trustcore.AEADKeySize]byte, nonce *[trustcore.AEADNonceSize]byte, aad, plaintext []byte) []byte {
	return newCipher(key).Seal(plaintext[:0], nonce[:], plaintext, aad)
}

// Decrypt opens ciphertext produced by Encrypt under the exact same
// (key, nonce, aad) triple, stripping the tag. On authentication failure it
// returns nil and ErrAuthentication; any partially written plaintext is
// wiped before returning.
func (ChaCha20Poly1305) Decrypt(key *[trustcore.AEADKeySize]byte, nonce *[trustcore.AEADNonceSize]byte, aad, ciphertext []byte) ([]byte, error) {
	plaintext, err := newCipher(key).Open(ciphertext[:0], nonce[:], ciphertext, aad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// Encrypt is the free-function form of ChaCha20Poly1305.Encrypt.
func Encrypt(key *[trustcore.AEADKeySize]byte, nonce *[trustcore.AEADNonceSize]byte, aad, plaintext []byte) []byte {
	return ChaCha20Poly1305{}.Encrypt(key, nonce, aad, plaintext)
}

// Decrypt is the free-function form of ChaCha20Poly1305.Decrypt.
func Decrypt(key *[trustcore.AEADKeySize]byte, nonce *[trustcore.AEADNonceSize]byte, aad, ciphertext []byte) ([]byte, error) {
	return ChaCha20Poly1305{}.Decrypt(key, nonce, aad, ciphertext)
}

func newCipher(key *[trustcore.AEADKeySize]byte) cipher.AEAD {
	c, err := chacha20poly1305.New(key[:])
	if err != nil {
		// The key length is fixed by the type system.
		panic(err)
	}
	return c
}

var _ trustcore.AEAD = ChaCha20Poly1305{}
