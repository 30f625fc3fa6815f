package ports

import (
	"context"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// ContactInput is the submitted contact form.
type ContactInput struct {
	Name    string `json:"name"    form:"name"    validate:"required"`
	Email   string `json:"email"   form:"email"   validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// ContactService defines the contact use case.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
}
