package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime applied when callers pass a zero ttl.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is a single value shared out-of-band by every verifying service;
// it must never be logged. Tokens are stateless: there is no revocation
// before expiry.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService builds a TokenService around the shared secret.
// A non-positive defaultTTL falls back to DefaultTokenTTL.
func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue signs the given claims together with issued-at and expiry
// timestamps. A zero ttl uses the service default; a negative ttl produces
// an already-expired token (useful only in tests).
func (s *TokenService) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}

// Verify decodes and validates a token, returning its claims. It fails
// closed with domain.ErrUnauthorized on any defect: empty or
// whitespace-padded input, wrong segment count, unknown signing method,
// signature mismatch, malformed payload, or expiry in the past. The reason
// is deliberately not distinguished to the caller.
func (s *TokenService) Verify(token string) (map[string]any, error) {
	if token == "" || token != strings.TrimSpace(token) || strings.Count(token, ".") != 2 {
		return nil, domain.ErrUnauthorized
	}

	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	return map[string]any(mc), nil
}
