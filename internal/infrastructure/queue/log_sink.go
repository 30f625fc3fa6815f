package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// LogSink delivers contact messages to the application log. It is used when
// no Redis inbox is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, msg domain.ContactMessage) error {
	s.log.Info().
		Str("message_id", msg.ID).
		Str("name", msg.Name).
		Str("email", msg.Email).
		Int("length", len(msg.Message)).
		Time("received_at", msg.Timestamp).
		Msg("contact message received")
	return nil
}
