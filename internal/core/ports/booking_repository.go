package ports

import (
	"context"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// BookingRepository stores bookings and owns the id counter.
type BookingRepository interface {
	// Create assigns the next id to b and stores it as one atomic step.
	// The counter only advances when the booking is stored.
	Create(ctx context.Context, b *domain.Booking) error
	// List returns all bookings ordered by id.
	List(ctx context.Context) ([]*domain.Booking, error)
	// NextID reports the id the next successful Create will assign.
	NextID(ctx context.Context) (int64, error)
}
