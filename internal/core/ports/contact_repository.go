package ports

import (
	"context"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// ContactRepository persists contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}

// ContactForwarder hands a stored message over for delivery.
type ContactForwarder interface {
	Forward(ctx context.Context, msg domain.ContactMessage) error
}

// ContactSink delivers a message to its final destination (inbox, log, ...).
type ContactSink interface {
	Deliver(ctx context.Context, msg domain.ContactMessage) error
}
