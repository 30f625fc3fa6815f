package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/core/validation"
	"github.com/wanderlust/tourism-site/internal/pkg/metrics"
)

const (
	defaultSessionTTL = 24 * time.Hour

	// builtinFallbackHash is a cost-10 bcrypt hash of a value no account uses.
	builtinFallbackHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	repo        ports.UserRepository
	hasher      ports.PasswordHasher
	revocations ports.RevocationList
	validator   *validation.Validator
	sessionTTL  time.Duration
	log         zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	revocations ports.RevocationList,
	v *validation.Validator,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		revocations: revocations,
		validator:   v,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// Register validates the form and creates the account. The password is hashed
// only once the form is valid.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.TrimSpace(in.Role)

	if err := s.validator.Validate(validation.FormRegister, in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(validation.FormRegister).Inc()
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	role, _ := domain.ParseRole(in.Role)

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			s.log.Info().Str("username", in.Username).Msg("registration rejected: username taken")
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords produce
// the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(validation.FormLogin, in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(validation.FormLogin).Inc()
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("login: %w", err)
		}
		// Same hashing cost as a real account.
		s.hasher.Verify(s.fallbackHash(), in.Password)
		return nil, s.rejectLogin(in.Username)
	}

	if !s.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, s.rejectLogin(in.Username)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Identity:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL).UTC(),
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return session, nil
}

// Logout ends an authenticated session. Anonymous sessions are a no-op.
// The caller always ends up anonymous: a revocation failure is logged and
// the token is left to expire on its own.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if !session.Authenticated() || session.ID == "" {
		return nil
	}
	if err := s.revocations.Revoke(ctx, session.ID, session.ExpiresAt); err != nil {
		s.log.Error().Err(err).
			Str("username", session.Identity).
			Time("expires_at", session.ExpiresAt).
			Msg("session revocation failed; token stays valid until expiry")
		return nil
	}
	s.log.Info().Str("username", session.Identity).Msg("logged out")
	return nil
}

func (s *AuthService) rejectLogin(username string) error {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	s.log.Info().Str("username", username).Msg("login rejected")
	return domain.ErrInvalidCredentials
}

// fallbackHash is checked against when the username is unknown so the
// response takes as long as a real password check.
func (s *AuthService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(uuid.NewString())
		if err != nil || h == "" {
			s.log.Warn().Err(err).Msg("failed to build fallback hash, using the built-in one")
			h = builtinFallbackHash
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
