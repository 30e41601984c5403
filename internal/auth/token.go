package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// verification failure kinds; all surface as 401 to clients
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenCodec issues and verifies signed identity tokens. The signing secret
// and TTL are injected at construction; verification is pure computation and
// safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// creates a token codec, failing fast on a missing secret
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is not configured")
	}

	if ttl <= 0 {
		ttl = time.Hour
	}

	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// creates a signed token embedding the full identity claim
func (tc *TokenCodec) Issue(userID int64, email, name string, role Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("invalid role %q", role)
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(tc.secret)
}

// validates a token and returns the embedded claims. The returned claims are
// the only source of truth for the caller's identity; the credential store is
// not consulted again.
func (tc *TokenCodec) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return tc.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role", ErrTokenMalformed)
	}

	return claims, nil
}
