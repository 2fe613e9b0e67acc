// Package trustcore defines the capability contracts and shared value types
// of the lowest layer of the trust stack: algorithm-agnostic interfaces for
// signing, verification, hashing, key agreement and authenticated encryption.
//
// Contents
//
//   - Capability interfaces (Signer, Verifier, Hasher, KeyAgreement, AEAD)
//     that concrete algorithms implement independently
//   - Fixed-size value types (Digest, SharedSecret) and the byte-level size
//     constants every consumer must agree on
//
// Concrete bindings live in the subpackages ed25519, x25519, hash and aead;
// the canonical text transform lives in encode and the entropy source in
// random. Generic code should accept the interfaces defined here and let the
// caller pick the algorithm.
//
// # Notes
//
// Every operation is synchronous, CPU-only and safe for concurrent use:
// nothing in this module holds mutable shared state. Errors are returned to
// the immediate caller and never logged.
package trustcore
