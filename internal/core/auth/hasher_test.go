package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("Verify rejected the original plaintext")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestHasher_SaltUniqueness(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext are identical")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes must verify against the plaintext")
	}
}

func TestHasher_TruncatesAt72Bytes(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	long := strings.Repeat("a", 100)
	digest, err := h.Hash(long)
	if err != nil {
		t.Fatalf("hashing a long password: %v", err)
	}

	// Everything beyond byte 72 is ignored, so a password sharing the
	// first 72 bytes verifies too.
	if !h.Verify(strings.Repeat("a", MaxPasswordBytes)+"different-tail", digest) {
		t.Fatalf("expected truncation at %d bytes", MaxPasswordBytes)
	}
	if h.Verify(strings.Repeat("b", 100), digest) {
		t.Fatalf("a password differing inside the first 72 bytes must not verify")
	}
}

func TestHasher_EmptyPlaintext(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("")
	if err != nil {
		t.Fatalf("hashing empty plaintext: %v", err)
	}
	if !h.Verify("", digest) {
		t.Fatalf("empty plaintext must verify against its own hash")
	}
}

func TestHasher_MalformedDigestFailsClosed(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}
