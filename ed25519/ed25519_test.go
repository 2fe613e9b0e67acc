package ed25519_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"trustcore/ed25519"
)

func mustGenerate(t *testing.T) *ed25519.KeyPair {
	t.Helper()
	kp, err := ed25519.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return kp
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp := mustGenerate(t)
	msg := []byte("the quick brown fox")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := kp.Public().Verify(msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if err := kp.Verify(msg, sig); err != nil {
		t.Fatalf("KeyPair.Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp := mustGenerate(t)
	msg := []byte("original message")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	tampered := []byte("original messagf")
	if err := kp.Public().Verify(tampered, sig); !errors.Is(err, ed25519.ErrVerification) {
		t.Fatalf("want ErrVerification for tampered message, got %v", err)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	kp := mustGenerate(t)
	msg := []byte("message")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig[0] ^= 0x01
	if err := kp.Public().Verify(msg, sig); !errors.Is(err, ed25519.ErrVerification) {
		t.Fatalf("want ErrVerification for tampered signature, got %v", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer := mustGenerate(t)
	other := mustGenerate(t)
	msg := []byte("message")

	sig, err := signer.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := other.Public().Verify(msg, sig); !errors.Is(err, ed25519.ErrVerification) {
		t.Fatalf("want ErrVerification under wrong key, got %v", err)
	}
}

// Fixed seed 0x01..0x20 over "test" pins the byte-exact RFC 8032 behaviour
// other runtimes must reproduce.
func TestFixedSeedRegressionVector(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	kp, err := ed25519.FromSeed(seed)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}

	wantPub := "79b5562e8fe654f94078b112e8a98ba7901f853ae695bed7e0e3910bad049664"
	if got := hex.EncodeToString(kp.Public().Slice()); got != wantPub {
		t.Fatalf("public key mismatch\n got %s\nwant %s", got, wantPub)
	}

	sig, err := kp.Sign([]byte("test"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	wantSig := "72b0ebbddb0bbdd7e59fb4bf624653e33435b837201de94f134fa13d2293c4d9" +
		"e93af966c167d5ddb0aeca4269dd43593aee44eb061124459a1288cb682e3602"
	if got := hex.EncodeToString(sig.Slice()); got != wantSig {
		t.Fatalf("signature mismatch\n got %s\nwant %s", got, wantSig)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	kp := mustGenerate(t)
	msg := []byte("same input, same output")

	first, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	second, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if first != second {
		t.Fatal("two signatures over the same message differ")
	}
}

func TestFromSeedRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		if _, err := ed25519.FromSeed(make([]byte, n)); err == nil {
			t.Fatalf("FromSeed accepted %d-byte seed", n)
		}
	}
}

func TestParseSignatureWrongLength(t *testing.T) {
	if _, err := ed25519.ParseSignature(make([]byte, 63)); !errors.Is(err, ed25519.ErrVerification) {
		t.Fatalf("want ErrVerification for short signature, got %v", err)
	}
	if _, err := ed25519.ParseSignature(make([]byte, 65)); !errors.Is(err, ed25519.ErrVerification) {
		t.Fatalf("want ErrVerification for long signature, got %v", err)
	}
}

func TestParsePublicKeyRoundTrip(t *testing.T) {
	kp := mustGenerate(t)
	pub, err := ed25519.ParsePublicKey(kp.Public().Slice())
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if pub != kp.Public() {
		t.Fatal("parsed public key differs from source")
	}
	if _, err := ed25519.ParsePublicKey(make([]byte, 31)); err == nil {
		t.Fatal("ParsePublicKey accepted 31 bytes")
	}
}

func TestPublicKeyIsCached(t *testing.T) {
	kp := mustGenerate(t)
	if kp.Public() != kp.Public() {
		t.Fatal("Public is not referentially stable")
	}
}

func TestSeedRoundTrip(t *testing.T) {
	kp := mustGenerate(t)
	again, err := ed25519.FromSeed(kp.Seed())
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if again.Public() != kp.Public() {
		t.Fatal("re-imported seed derives a different public key")
	}
	// Seed returns a copy; mutating it must not touch the pair.
	seed := kp.Seed()
	for i := range seed {
		seed[i] = 0
	}
	if !bytes.Equal(kp.Seed(), again.Seed()) {
		t.Fatal("Seed exposed internal state")
	}
}
