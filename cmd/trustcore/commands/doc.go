// Package commands defines the trustcore CLI, a thin consumer of the
// primitive packages.
//
// Commands
//
//   - keygen    Generate an Ed25519 or X25519 key pair
//   - sign      Sign a message with an Ed25519 seed
//   - verify    Verify a detached Ed25519 signature
//   - digest    Hash input with SHA-256 or BLAKE2b-256
//   - seal      Encrypt with ChaCha20-Poly1305
//   - open      Decrypt and authenticate a sealed message
//   - dh        Derive an X25519 shared secret
//   - encode    Base64url-encode stdin or a file
//   - decode    Decode canonical base64url input
//
// # Implementation
//
// All binary material crosses the command line in canonical base64url.
// Message input comes from a file argument or stdin ("-"). Secret bytes
// parsed from flags are wiped after the key object is built.
package commands
