package auth

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the bcrypt input limit. Plaintexts longer than this
// are silently truncated before hashing and before verification, so a
// password and any extension of it beyond 72 bytes are interchangeable.
// This mirrors the behaviour the rest of the deployment relies on; the
// policy is pinned by tests rather than left implicit.
const MaxPasswordBytes = 72

// Hasher produces and verifies salted one-way password digests.
// Hashing is deliberately expensive; callers must not hold locks while
// calling Hash.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost factor.
// Non-positive cost falls back to bcrypt.DefaultCost.
func NewHasher(cost int) Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash returns a randomly salted digest of plaintext. Two calls with the
// same plaintext yield different digests that both verify.
func (h Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest fails closed: the result is false, never a panic or an error.
func (h Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(plaintext)) == nil
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
