// Package memory provides process-local implementations of the storage ports.
// They are used in development and tests; every store is safe for concurrent use.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// UserRepository keeps accounts in a map keyed by username.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Create checks and inserts under one lock, so concurrent registrations of the
// same username yield exactly one success.
func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	r.nextID++
	stored := *user
	stored.ID = strconv.Itoa(r.nextID)
	r.users[stored.Username] = stored

	out := stored
	return &out, nil
}
