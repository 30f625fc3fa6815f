package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/core/validation"
	"github.com/wanderlust/tourism-site/internal/pkg/metrics"
)

// BookingPolicy holds the deployment choices for booking intake.
type BookingPolicy struct {
	// RequireLogin rejects anonymous bookings with domain.ErrUnauthenticated.
	// When false, anonymous bookings are attributed to domain.GuestMarker.
	RequireLogin bool
}

type BookingService struct {
	repo      ports.BookingRepository
	validator *validation.Validator
	policy    BookingPolicy
	logger    zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, v *validation.Validator, policy BookingPolicy, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, validator: v, policy: policy, logger: logger}
}

// Submit validates the form and stores a new booking. Nothing is written
// (and no id consumed) when validation fails.
func (s *BookingService) Submit(ctx context.Context, in ports.BookingInput, session *domain.Session) (*domain.Booking, error) {
	if s.policy.RequireLogin {
		if err := session.RequireAuthenticated(); err != nil {
			return nil, err
		}
	}

	in = normalizeBooking(in)
	if err := s.validator.Validate(validation.FormBooking, in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(validation.FormBooking).Inc()
		return nil, err
	}

	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("submit booking: parse date: %w", err)
	}

	booking := &domain.Booking{
		Service:     domain.ServiceKind(in.Service),
		Destination: in.Destination,
		Date:        date,
		Name:        in.Name,
		Email:       in.Email,
		BookedBy:    session.BookedBy(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Service)).Inc()
	s.logger.Info().
		Int64("booking_id", booking.ID).
		Str("service", string(booking.Service)).
		Str("booked_by", booking.BookedBy).
		Msg("booking created")

	return booking, nil
}

// List returns every booking. Admins only.
func (s *BookingService) List(ctx context.Context, session *domain.Session) ([]*domain.Booking, error) {
	if err := session.RequireRole(domain.RoleAdmin); err != nil {
		return nil, err
	}
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func normalizeBooking(in ports.BookingInput) ports.BookingInput {
	in.Service = strings.ToLower(strings.TrimSpace(in.Service))
	in.Destination = strings.TrimSpace(in.Destination)
	in.Date = strings.TrimSpace(in.Date)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
