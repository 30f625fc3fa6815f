package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/api/middleware"
	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, in ports.LoginInput) (*domain.Session, error)
	logoutFn   func(ctx context.Context, s *domain.Session) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) Logout(ctx context.Context, session *domain.Session) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, session)
}

type stubIssuer struct{}

func (stubIssuer) Issue(s *domain.Session) (string, error) { return "token-" + s.Identity, nil }
func (stubIssuer) Parse(string) (*domain.Session, error)   { return nil, errors.New("not used") }

var testCookie = middleware.SessionCookie{Name: "tourism_session"}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie.Name {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Role != "user" || in.ConfirmPassword != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{Username: in.Username, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	body := `{"username":"alice","password":"secret1","confirm_password":"secret1","role":"user"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/register", body), rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialised")
	}
	if resp["redirect"] != "/login" {
		t.Fatalf("expected redirect to /login, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Register_FormEncoded(t *testing.T) {
	e := echo.New()
	var got ports.RegisterInput
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			got = in
			return &domain.User{Username: in.Username, Role: domain.Role(in.Role)}, nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	form := url.Values{
		"username":         {"carol"},
		"email":            {"carol@example.com"},
		"role":             {"admin"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Username != "carol" || got.Email != "carol@example.com" || got.ConfirmPassword != "secret1" {
		t.Fatalf("form fields not bound: %+v", got)
	}
}

func TestAuthHandler_Register_PropagatesDomainErrors(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	c := e.NewContext(jsonRequest(http.MethodPost, "/register", `{"username":"bob"}`), httptest.NewRecorder())
	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	c := e.NewContext(jsonRequest(http.MethodPost, "/register", "not-json"), httptest.NewRecorder())
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	cases := []struct {
		role     domain.Role
		redirect string
	}{
		{domain.RoleUser, "/"},
		{domain.RoleAdmin, "/admin"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			e := echo.New()
			exp := time.Now().Add(time.Hour)
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
					if in.Username != "alice" || in.Password != "secret1" {
						t.Fatalf("unexpected input: %+v", in)
					}
					return &domain.Session{ID: "s1", Identity: "alice", Role: tc.role, ExpiresAt: exp}, nil
				},
			}
			h := NewAuthHandler(stub, stubIssuer{}, testCookie)

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/login", `{"username":"alice","password":"secret1"}`), rec)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			ck := sessionCookie(rec)
			if ck == nil || ck.Value != "token-alice" || !ck.HttpOnly {
				t.Fatalf("session cookie not written: %+v", ck)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["redirect"] != tc.redirect {
				t.Fatalf("expected redirect %s, got %v", tc.redirect, resp["redirect"])
			}
		})
	}
}

func TestAuthHandler_Login_InvalidCredentialsSetsNoCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/login", `{"username":"alice","password":"bad"}`), rec)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie expected on failed login")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	var loggedOut *domain.Session
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, s *domain.Session) error {
			loggedOut = s
			return nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	alice := &domain.Session{ID: "s1", Identity: "alice", Role: domain.RoleUser}
	c.Set("session", alice)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loggedOut != alice {
		t.Fatalf("expected the current session to be logged out")
	}
	if ck := sessionCookie(rec); ck == nil || ck.MaxAge >= 0 {
		t.Fatalf("expected the session cookie to be cleared, got %+v", ck)
	}
}

func TestAuthHandler_LogoutClearsCookieWhenServiceFails(t *testing.T) {
	e := echo.New()
	storeDown := errors.New("store down")
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, s *domain.Session) error { return storeDown },
	}
	h := NewAuthHandler(stub, stubIssuer{}, testCookie)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	c.Set("session", &domain.Session{ID: "s1", Identity: "alice", Role: domain.RoleUser})

	if err := h.Logout(c); !errors.Is(err, storeDown) {
		t.Fatalf("expected the service error, got %v", err)
	}
	if ck := sessionCookie(rec); ck == nil || ck.MaxAge >= 0 {
		t.Fatalf("expected the session cookie to be cleared, got %+v", ck)
	}
}

func TestAuthHandler_Forms(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, stubIssuer{}, testCookie)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/register", nil), rec)
	c.Set(CSRFContextKey, "csrf-abc")
	if err := h.RegisterForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp formResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Form != "register" || resp.CSRFToken != "csrf-abc" || len(resp.Fields) != 5 {
		t.Fatalf("unexpected form: %+v", resp)
	}
}
