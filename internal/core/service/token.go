package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Bearer tokens carry the user id and an expiry, nothing else. They are
// stateless: there is no server-side revocation list, and a token is always
// re-derivable from the id alone.
const defaultTokenTTL = 30 * 24 * time.Hour

// TokenIssuer signs HS256 bearer tokens for a user id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a fresh signed token for the given user id.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}
