package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
)

const sessionContextKey = "session"

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Write stores token in an HttpOnly cookie expiring with the session.
func (sc SessionCookie) Write(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear instructs the client to drop the session cookie.
func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Session decodes the session cookie and stores the resulting session in the
// request context. It never rejects a request: a missing, invalid, expired or
// revoked cookie leaves the request anonymous, and the guards in the services
// decide what anonymous callers may do.
func Session(cookie SessionCookie, issuer ports.SessionIssuer, revocations ports.RevocationList, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := c.Cookie(cookie.Name)
			if err != nil || raw.Value == "" {
				return next(c)
			}

			s, err := issuer.Parse(raw.Value)
			if err != nil {
				cookie.Clear(c)
				return next(c)
			}

			revoked, err := revocations.IsRevoked(c.Request().Context(), s.ID)
			if err != nil {
				log.Warn().Err(err).Str("session_id", s.ID).Msg("revocation check failed, treating session as anonymous")
				return next(c)
			}
			if revoked {
				cookie.Clear(c)
				return next(c)
			}

			c.Set(sessionContextKey, s)
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by Session, or nil when the request
// is anonymous.
func SessionFrom(c echo.Context) *domain.Session {
	s, _ := c.Get(sessionContextKey).(*domain.Session)
	return s
}
