package memory

import (
	"context"
	"sync"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// ContactRepository appends contact messages to a slice.
type ContactRepository struct {
	mu       sync.Mutex
	messages []domain.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
	return nil
}

// Messages returns a snapshot of everything stored so far.
func (r *ContactRepository) Messages() []domain.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ContactMessage(nil), r.messages...)
}
