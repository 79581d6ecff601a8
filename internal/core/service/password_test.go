package service

import "testing"

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
	if h1 == "pw" || h2 == "pw" {
		t.Fatalf("hash must not equal plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword("correct horse", hash) {
		t.Fatalf("expected matching plaintext to verify")
	}
	if VerifyPassword("battery staple", hash) {
		t.Fatalf("expected non-matching plaintext to fail")
	}
}
