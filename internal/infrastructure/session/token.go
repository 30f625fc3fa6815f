// Package session carries authenticated sessions across requests as signed
// JWTs. Only the identity, role, session id and expiry travel in the token.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

const issuer = "tourism-site"

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the JWT payload of a session cookie.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 session tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a manager signing with secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Issue signs s. The session must be authenticated and carry an expiry.
func (tm *TokenManager) Issue(s *domain.Session) (string, error) {
	if !s.Authenticated() {
		return "", fmt.Errorf("issue token: %w", domain.ErrUnauthenticated)
	}
	if s.ExpiresAt.IsZero() {
		return "", errors.New("issue token: session has no expiry")
	}

	claims := &Claims{
		Role: string(s.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.Identity,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(tm.now()),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Parse validates token and returns the session it carries.
func (tm *TokenManager) Parse(token string) (*domain.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Session{
		ID:        claims.ID,
		Identity:  claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
