// Package auth implements the identity-provider surface consumed by the
// workflow: session tokens, credential hashing and step-up challenge codes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"news-publisher/internal/domain"
)

var (
	// ErrTokenInvalid indicates a malformed, tampered or mistyped token.
	ErrTokenInvalid = errors.New("invalid session token")
	// ErrTokenExpired indicates a syntactically valid but expired token.
	ErrTokenExpired = errors.New("session token expired")
)

// Claims are the session token claims. The subject is the profile id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and parses HS256 session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue signs a session token for the given profile.
func (m *TokenManager) Issue(profileID string, role domain.Role) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("token manager has no signing secret")
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuidString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return raw, expiresAt, nil
}

// Parse validates a raw token and returns its claims.
func (m *TokenManager) Parse(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrTokenInvalid
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
