package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeychainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateSecret_LengthAndRandomness(t *testing.T) {
	svc := NewKeychainService()

	v1, err := svc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}
	v2, err := svc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}

	if len(v1) != 32 {
		t.Fatalf("secret length = %d, want 32", len(v1))
	}
	if bytes.Equal(v1, v2) {
		t.Fatalf("expected secrets to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeychainService()

	secret := bytes.Repeat([]byte{0x42}, 32)
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(secret, salt)
	k2 := svc.DeriveKey(secret, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("same inputs must derive the same key")
	}
}

func TestDeriveKey_DiffersPerSalt(t *testing.T) {
	svc := NewKeychainService()

	secret := bytes.Repeat([]byte{0x42}, 32)
	k1 := svc.DeriveKey(secret, bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKey(secret, bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("different salts must derive different keys")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeychainService()

	key := bytes.Repeat([]byte{0x11}, 32)
	plaintext := []byte("refresh-token-value")

	sealed, err := svc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == string(plaintext) {
		t.Fatalf("sealed blob must not equal the plaintext")
	}

	opened, err := svc.Open(sealed, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", opened, plaintext)
	}
}

func TestSeal_NonceVariesPerCall(t *testing.T) {
	svc := NewKeychainService()

	key := bytes.Repeat([]byte{0x11}, 32)
	s1, err := svc.Seal([]byte("v"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	s2, err := svc.Seal([]byte("v"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if s1 == s2 {
		t.Fatalf("sealing the same value twice must produce different blobs")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	svc := NewKeychainService()

	sealed, err := svc.Seal([]byte("secret"), bytes.Repeat([]byte{0x11}, 32))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err = svc.Open(sealed, bytes.Repeat([]byte{0x22}, 32)); err == nil {
		t.Fatalf("expected authentication failure with the wrong key")
	}
}

func TestOpen_CorruptedBlob(t *testing.T) {
	svc := NewKeychainService()
	key := bytes.Repeat([]byte{0x11}, 32)

	if _, err := svc.Open("not-base64!!!", key); err == nil {
		t.Fatalf("expected error for malformed base64")
	}
	if _, err := svc.Open("QUJD", key); err == nil { // 3 bytes, shorter than a nonce
		t.Fatalf("expected error for blob shorter than the nonce")
	}
}
