package domain

import "time"

// Session is the authenticated context carried across requests.
// A nil Session, or one without an identity, is anonymous.
type Session struct {
	ID        string    `json:"-"`
	Identity  string    `json:"username"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries a logged-in identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != ""
}

// RequireAuthenticated fails with ErrUnauthenticated for anonymous sessions.
func (s *Session) RequireAuthenticated() error {
	if !s.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// RequireRole checks authentication first, then the role.
func (s *Session) RequireRole(role Role) error {
	if err := s.RequireAuthenticated(); err != nil {
		return err
	}
	if s.Role != role {
		return ErrForbidden
	}
	return nil
}

// BookedBy returns the identity to attribute a record to.
func (s *Session) BookedBy() string {
	if !s.Authenticated() {
		return GuestMarker
	}
	return s.Identity
}
