package ports

import (
	"context"
	"time"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// LoginInput is the submitted login form.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterInput is the submitted registration form.
type RegisterInput struct {
	Username        string `json:"username"         form:"username"         validate:"required,min=4,max=25"`
	Email           string `json:"email"            form:"email"            validate:"omitempty,email"`
	Role            string `json:"role"             form:"role"             validate:"required,oneof=user admin"`
	Password        string `json:"password"         form:"password"         validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.Session, error)
	Logout(ctx context.Context, session *domain.Session) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify returns false on mismatch or on a malformed hash.
	Verify(hash, plain string) bool
}

// SessionIssuer encodes sessions for transport and decodes them back.
type SessionIssuer interface {
	Issue(session *domain.Session) (string, error)
	Parse(token string) (*domain.Session, error)
}

// RevocationList remembers logged-out sessions until they would have expired.
type RevocationList interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
