package ports

import (
	"context"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// BookingInput is the submitted booking form.
type BookingInput struct {
	Service     string `json:"service"     form:"service"     validate:"required,oneof=flight hotel car"`
	Destination string `json:"destination" form:"destination" validate:"required"`
	Date        string `json:"date"        form:"date"        validate:"required,datetime=2006-01-02"`
	Name        string `json:"name"        form:"name"        validate:"required"`
	Email       string `json:"email"       form:"email"       validate:"required,email"`
}

// BookingService defines booking use cases.
type BookingService interface {
	Submit(ctx context.Context, in BookingInput, session *domain.Session) (*domain.Booking, error)
	List(ctx context.Context, session *domain.Session) ([]*domain.Booking, error)
}
