package memory

import (
	"context"
	"sync"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// BookingRepository stores bookings in insertion order. Ids start at 1.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	lastID   int64
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	b.ID = r.lastID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, len(r.bookings))
	for i := range r.bookings {
		b := r.bookings[i]
		out[i] = &b
	}
	return out, nil
}

func (r *BookingRepository) NextID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID + 1, nil
}
