package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

const (
	bookingsCollection = "bookings"

	// maxCreateAttempts caps how often Create retries after losing an id
	// race to another writer.
	maxCreateAttempts = 16
)

// ErrIDContention is returned when Create keeps losing the id race.
var ErrIDContention = errors.New("booking id contention")

// BookingRepository implements ports.BookingRepository. The booking's _id is
// the sequence: Create inserts at max(_id)+1 and the unique _id index
// rejects a concurrent writer that picked the same value. A failed insert
// consumes nothing, so the sequence has no gaps.
type BookingRepository struct {
	bookings *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{bookings: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		last, err := r.lastID(ctx)
		if err != nil {
			return err
		}
		b.ID = nextBookingID(last)

		_, err = r.bookings.InsertOne(ctx, b)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			b.ID = 0
			return fmt.Errorf("insert booking: %w", err)
		}
	}
	b.ID = 0
	return ErrIDContention
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.bookings.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Booking{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) NextID(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	last, err := r.lastID(ctx)
	if err != nil {
		return 0, err
	}
	return nextBookingID(last), nil
}

// lastID returns the highest stored booking id, or 0 when there are none.
func (r *BookingRepository) lastID(ctx context.Context) (int64, error) {
	var doc struct {
		ID int64 `bson:"_id"`
	}
	err := r.bookings.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}).SetProjection(bson.M{"_id": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read last booking id: %w", err)
	}
	return doc.ID, nil
}

func nextBookingID(last int64) int64 {
	return last + 1
}
