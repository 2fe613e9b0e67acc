// Package hash binds the Hasher capability to SHA-256 and BLAKE2b-256.
//
// Both algorithms are pure functions over their input and produce 32-byte
// digests, so they are interchangeable behind trustcore.Hasher and safe for
// concurrent use without coordination.
package hash

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"

	"trustcore"
)

// SHA256Hasher hashes with SHA-256 (FIPS 180-4).
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(data []byte) trustcore.Digest {
	return trustcore.Digest(sha256.Sum256(data))
}

// BLAKE2b256Hasher hashes with BLAKE2b at a 256-bit output size (RFC 7693).
type BLAKE2b256Hasher struct{}

func (BLAKE2b256Hasher) Hash(data []byte) trustcore.Digest {
	return trustcore.Digest(blake2b.Sum256(data))
}

// SHA256Sum is the free-function form of SHA256Hasher for the common
// single-algorithm case.
func SHA256Sum(data []byte) trustcore.Digest {
	return SHA256Hasher{}.Hash(data)
}

// BLAKE2b256Sum is the free-function form of BLAKE2b256Hasher.
func BLAKE2b256Sum(data []byte) trustcore.Digest {
	return BLAKE2b256Hasher{}.Hash(data)
}

var (
	_ trustcore.Hasher = SHA256Hasher{}
	_ trustcore.Hasher = BLAKE2b256Hasher{}
)
