package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/api/middleware"
	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// CSRFContextKey is where the CSRF middleware leaves the request's token.
const CSRFContextKey = "csrf"

// currentSession returns the caller's session, nil when anonymous.
func currentSession(c echo.Context) *domain.Session {
	return middleware.SessionFrom(c)
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(CSRFContextKey).(string)
	return token
}

func sessionUserOf(s *domain.Session) *sessionUser {
	if !s.Authenticated() {
		return nil
	}
	return &sessionUser{Username: s.Identity, Role: s.Role}
}
