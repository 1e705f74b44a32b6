package auth

import (
	"encoding/json"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// Claims is the identity a verified session token asserts. It is minted at
// login, baked into the token, and recomputed into an access scope on every
// request; it is never persisted.
type Claims struct {
	UserID   int64
	Email    string
	Role     string
	BranchID int
}

// NewClaims captures the identity fields of a user at token issuance time.
func NewClaims(u *domain.User) Claims {
	return Claims{UserID: u.ID, Email: u.Email, Role: u.Role, BranchID: u.BranchID}
}

// AsMap renders the claims as a token payload.
func (c Claims) AsMap() map[string]any {
	return map[string]any{
		"user_id":   c.UserID,
		"email":     c.Email,
		"role":      c.Role,
		"branch_id": c.BranchID,
	}
}

// ClaimsFromMap extracts identity claims from a verified token payload.
// A payload missing the subject or role is unusable and rejected as
// unauthorized.
func ClaimsFromMap(m map[string]any) (Claims, error) {
	c := Claims{}

	userID, ok := asInt64(m["user_id"])
	if !ok || userID <= 0 {
		return Claims{}, domain.ErrUnauthorized
	}
	c.UserID = userID

	c.Role, _ = m["role"].(string)
	if c.Role == "" {
		return Claims{}, domain.ErrUnauthorized
	}

	c.Email, _ = m["email"].(string)
	branch, _ := asInt64(m["branch_id"])
	c.BranchID = int(branch)

	return c, nil
}

// asInt64 tolerates the numeric shapes a JWT payload can carry: native ints
// when freshly issued, float64 or json.Number after a decode round-trip.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
