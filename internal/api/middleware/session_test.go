package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

type stubIssuer struct {
	sessions map[string]*domain.Session
}

func (s *stubIssuer) Issue(session *domain.Session) (string, error) {
	return "tok-" + session.ID, nil
}

func (s *stubIssuer) Parse(token string) (*domain.Session, error) {
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, errors.New("bad token")
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (r *stubRevocations) Revoke(context.Context, string, time.Time) error { return nil }

func (r *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	return r.revoked[id], r.err
}

var testCookie = SessionCookie{Name: "tourism_session"}

func runSession(t *testing.T, cookieValue string, revocations *stubRevocations) (*domain.Session, *httptest.ResponseRecorder) {
	t.Helper()
	issuer := &stubIssuer{sessions: map[string]*domain.Session{
		"good": {ID: "s1", Identity: "alice", Role: domain.RoleUser, ExpiresAt: time.Now().Add(time.Hour)},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Session
	mw := Session(testCookie, issuer, revocations, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		got = SessionFrom(c)
		return nil
	})(c)
	require.NoError(t, err)
	return got, rec
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie.Name && ck.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestSession_NoCookieIsAnonymous(t *testing.T) {
	got, rec := runSession(t, "", &stubRevocations{})
	assert.Nil(t, got)
	assert.False(t, clearedCookie(rec))
}

func TestSession_ValidCookie(t *testing.T) {
	got, _ := runSession(t, "good", &stubRevocations{})
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Identity)
}

func TestSession_InvalidCookieIsClearedAndAnonymous(t *testing.T) {
	got, rec := runSession(t, "forged", &stubRevocations{})
	assert.Nil(t, got)
	assert.True(t, clearedCookie(rec))
}

func TestSession_RevokedCookie(t *testing.T) {
	got, rec := runSession(t, "good", &stubRevocations{revoked: map[string]bool{"s1": true}})
	assert.Nil(t, got)
	assert.True(t, clearedCookie(rec))
}

func TestSession_RevocationStoreDown(t *testing.T) {
	got, rec := runSession(t, "good", &stubRevocations{err: errors.New("redis down")})
	assert.Nil(t, got)
	assert.False(t, clearedCookie(rec))
}

func TestSessionCookie_Write(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

	exp := time.Now().Add(time.Hour)
	SessionCookie{Name: "sid", Secure: true}.Write(c, "tok", exp)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, "sid", ck.Name)
	assert.Equal(t, "tok", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, "/", ck.Path)
}
