package trustcore

// Signer produces signatures over arbitrary messages. The type parameter is
// the algorithm's own signature type, so callers cannot feed an Ed25519
// signature to a verifier for a different scheme.
//
// Any byte sequence is a valid message; Sign fails only on internal error.
type Signer[S any] interface {
	Sign(message []byte) (S, error)
}

// Verifier checks signatures using public material only.
//
// A malformed signature and a cryptographic mismatch are reported as the
// same failure; implementations must not let callers tell them apart.
type Verifier[S any] interface {
	Verify(message []byte, signature S) error
}

// Hasher is a pure function from bytes to a 32-byte digest. It never fails.
type Hasher interface {
	Hash(data []byte) Digest
}

// KeyAgreement performs Diffie-Hellman against a peer's public key. The type
// parameter is the algorithm's public-key type.
//
// DiffieHellman fails only when the supplied public key is invalid or
// degenerate (identity point, low-order point).
type KeyAgreement[P any] interface {
	DiffieHellman(theirPublic P) (SharedSecret, error)
}

// AEAD is authenticated encryption with associated data over caller-supplied
// key and nonce material. Nonce uniqueness per key is a caller obligation;
// implementations never generate or track nonces.
//
// Encrypt appends the 16-byte authentication tag to the plaintext and reuses
// the plaintext's backing storage when its capacity allows. It cannot fail:
// the fixed-size key and nonce types rule out every invalid input.
//
// Decrypt strips and checks the tag. On authentication failure it returns a
// nil plaintext and whatever was written to the buffer is wiped, so partial
// plaintext never reaches the caller.
type AEAD interface {
	Encrypt(key *[AEADKeySize]byte, nonce *[AEADNonceSize]byte, aad, plaintext []byte) []byte
	Decrypt(key *[AEADKeySize]byte, nonce *[AEADNonceSize]byte, aad, ciphertext []byte) ([]byte, error)
}
