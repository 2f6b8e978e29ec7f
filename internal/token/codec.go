// Package token issues and validates the signed session tokens that carry
// identity and role between the dashboard client and the server.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"goat-dashboard/internal/domain"
)

// ErrInvalidToken covers malformed structure, signature mismatch and expiry.
// The causes are deliberately not distinguished to the caller.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL is the session lifetime. Expiry is the only invalidation
// mechanism; there is no server-side revocation list.
const DefaultTTL = 7 * 24 * time.Hour

// Claims are the facts embedded in a session token.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide HMAC secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue produces a signed, self-contained token for the given claims.
func (c *Codec) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Decode validates the token and returns its claims. Any failure, whether a
// malformed token, a bad signature or a past expiry, yields ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
