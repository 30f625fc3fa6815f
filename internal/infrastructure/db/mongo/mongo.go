package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderlust/tourism-site/internal/pkg/config"
)

// defaultTimeout bounds every single store operation.
const defaultTimeout = 10 * time.Second

// Store is the site's MongoDB database. It hands out the repositories that
// live in it.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to cfg.URI, checks the server answers and prepares the
// indexes the repositories rely on.
func Open(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetAppName("tourism-site"))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	s := &Store{client: client, db: client.Database(cfg.Database)}

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	if err := s.Users().EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return s, nil
}

// Ping backs the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

func (s *Store) Users() *UserRepository {
	return NewUserRepository(s.db)
}

func (s *Store) Bookings() *BookingRepository {
	return NewBookingRepository(s.db)
}

func (s *Store) Contacts() *ContactRepository {
	return NewContactRepository(s.db)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
