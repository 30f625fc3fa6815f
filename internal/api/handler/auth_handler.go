package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/api/middleware"
	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	issuer      ports.SessionIssuer
	cookie      middleware.SessionCookie
}

func NewAuthHandler(authService ports.AuthService, issuer ports.SessionIssuer, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, issuer: issuer, cookie: cookie}
}

// LoginForm returns the empty login form.
//
// @Summary      Login form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  formResponse
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{
		Form:      "login",
		Fields:    []string{"username", "password"},
		CSRFToken: csrfToken(c),
	})
}

// Login authenticates the caller and starts a session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var in ports.LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s, err := h.authService.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}

	token, err := h.issuer.Issue(s)
	if err != nil {
		return err
	}
	h.cookie.Write(c, token, s.ExpiresAt)

	redirect := "/"
	if s.Role == domain.RoleAdmin {
		redirect = "/admin"
	}
	return c.JSON(http.StatusOK, loginResponse{
		Message:   "login successful",
		User:      sessionUser{Username: s.Identity, Role: s.Role},
		ExpiresAt: s.ExpiresAt,
		Redirect:  redirect,
	})
}

// RegisterForm returns the empty registration form.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  formResponse
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{
		Form:      "register",
		Fields:    []string{"username", "email", "role", "password", "confirm_password"},
		Options:   []string{string(domain.RoleUser), string(domain.RoleAdmin)},
		CSRFToken: csrfToken(c),
	})
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var in ports.RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message:  "registration successful, please log in",
		User:     user,
		Redirect: "/login",
	})
}

// Logout ends the caller's session. Anonymous callers get the same answer.
// The cookie is dropped before anything else can fail.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)
	if err := h.authService.Logout(c.Request().Context(), currentSession(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out", Redirect: "/"})
}
