package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/core/validation"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var testValidator = validation.New()

type stubUserRepo struct {
	users     map[string]*domain.User
	findErr   error
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	clone := *user
	clone.ID = user.Username
	r.users[user.Username] = &clone
	out := clone
	return &out, nil
}

// stubHasher prefixes the plaintext; good enough to test the service contract.
type stubHasher struct {
	verifyCalls int
	verified    []string
	hashErr     error
}

func (h *stubHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h *stubHasher) Verify(hash, plain string) bool {
	h.verifyCalls++
	h.verified = append(h.verified, hash)
	return strings.HasPrefix(hash, "hashed:") && hash == "hashed:"+plain
}

type stubRevocations struct {
	revoked map[string]time.Time
	err     error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Time)}
}

func (r *stubRevocations) Revoke(_ context.Context, id string, until time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[id] = until
	return nil
}

func (r *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := r.revoked[id]
	return ok, r.err
}

type stubBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int64
	createErr error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{nextID: 1}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *stubBookingRepo) NextID(_ context.Context) (int64, error) {
	return r.nextID, nil
}

type stubContactRepo struct {
	messages  []*domain.ContactMessage
	createErr error
}

func (r *stubContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *msg
	r.messages = append(r.messages, &clone)
	return nil
}

type stubForwarder struct {
	mu        sync.Mutex
	forwarded []domain.ContactMessage
	err       error
}

func (f *stubForwarder) Forward(_ context.Context, msg domain.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.forwarded = append(f.forwarded, msg)
	return nil
}

var errStoreDown = errors.New("store unavailable")

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func registration(username, password, email, role string) ports.RegisterInput {
	return ports.RegisterInput{
		Username:        username,
		Email:           email,
		Role:            role,
		Password:        password,
		ConfirmPassword: password,
	}
}

func parisBooking() ports.BookingInput {
	return ports.BookingInput{
		Service:     "flight",
		Destination: "Paris",
		Date:        "2025-06-01",
		Name:        "Alice",
		Email:       "a@x.com",
	}
}
