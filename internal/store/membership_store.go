package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mexicoindia/membership-backend/internal/models"
)

// MembershipStore is the persistence boundary for membership applications.
// Controllers depend on this interface so tests can swap in fakes.
type MembershipStore interface {
	Insert(ctx context.Context, m *models.Membership) error
	ListNewestFirst(ctx context.Context) ([]models.Membership, error)
}

type MongoMembershipStore struct {
	col *mongo.Collection
}

func NewMongoMembershipStore(db *mongo.Database) *MongoMembershipStore {
	return &MongoMembershipStore{col: db.Collection("memberships")}
}

// Insert stamps CreatedAt and appends the record. The caller's struct gets
// the generated ObjectID back.
func (s *MongoMembershipStore) Insert(ctx context.Context, m *models.Membership) error {
	m.CreatedAt = time.Now().UTC()
	res, err := s.col.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid
	}
	return nil
}

func (s *MongoMembershipStore) ListNewestFirst(ctx context.Context) ([]models.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find memberships: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Membership
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode memberships: %w", err)
	}
	return out, nil
}
