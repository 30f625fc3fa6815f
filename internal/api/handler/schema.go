package handler

import (
	"time"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// ErrorResponse is the envelope of every 4xx/5xx response. The HTTP error
// handler writes it; the handlers only name it in their API annotations.
type ErrorResponse struct {
	Error    string              `json:"error"`
	Fields   map[string][]string `json:"fields,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// formResponse describes an empty form and the token to submit it with.
type formResponse struct {
	Form      string   `json:"form"`
	Fields    []string `json:"fields"`
	Options   []string `json:"options,omitempty"`
	CSRFToken string   `json:"csrf_token,omitempty"`
}

type sessionUser struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type loginResponse struct {
	Message   string      `json:"message"`
	User      sessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
	Redirect  string      `json:"redirect"`
}

type registerResponse struct {
	Message  string       `json:"message"`
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

type messageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

type bookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

type bookingListResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
	Count    int               `json:"count"`
}

type contactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type homeResponse struct {
	Site     string               `json:"site"`
	Services []domain.ServiceKind `json:"services"`
	Links    map[string]string    `json:"links"`
	User     *sessionUser         `json:"user,omitempty"`
}

type destinationsResponse struct {
	Destinations []domain.Destination `json:"destinations"`
}
