package service

import (
	"math/rand/v2"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func randomPassword(r *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*() "
	n := 1 + r.IntN(40)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return string(b)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		pw := randomPassword(r)
		hash, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("hash %q: %v", pw, err)
		}
		if hash == pw {
			t.Fatalf("hash must not equal plaintext")
		}
		if !h.Verify(pw, hash) {
			t.Fatalf("verify failed for %q", pw)
		}
		other := randomPassword(r)
		if other != pw && h.Verify(other, hash) {
			t.Fatalf("false positive: %q matched hash of %q", other, pw)
		}
	}
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestBcryptHasher_MalformedHashIsNoMatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	for _, hash := range []string{"", "plaintext", "$2a$10$short", "$argon2id$v=19$m=65536"} {
		if h.Verify("password", hash) {
			t.Fatalf("malformed hash %q must not verify", hash)
		}
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != DefaultBcryptCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptHasher(1).cost; got != bcrypt.MinCost {
		t.Fatalf("expected min cost, got %d", got)
	}
	if got := NewBcryptHasher(99).cost; got != bcrypt.MaxCost {
		t.Fatalf("expected max cost, got %d", got)
	}
}
