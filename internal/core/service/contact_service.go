package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/core/validation"
	"github.com/wanderlust/tourism-site/internal/pkg/metrics"
)

type ContactService struct {
	repo      ports.ContactRepository
	forwarder ports.ContactForwarder
	validator *validation.Validator
	log       zerolog.Logger
}

// NewContactService returns a ContactService. forwarder may be nil, in which
// case messages are only stored.
func NewContactService(repo ports.ContactRepository, forwarder ports.ContactForwarder, v *validation.Validator, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, forwarder: forwarder, validator: v, log: log}
}

// Submit validates and stores a contact message, then forwards it.
// Forwarding failures are logged and do not fail the submission.
func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := s.validator.Validate(validation.FormContact, in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(validation.FormContact).Inc()
		return nil, err
	}

	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	metrics.ContactMessagesTotal.Inc()

	if s.forwarder != nil {
		if err := s.forwarder.Forward(ctx, *msg); err != nil {
			s.log.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to forward contact message")
		}
	}

	s.log.Info().Str("message_id", msg.ID).Msg("contact message received")
	return msg, nil
}
