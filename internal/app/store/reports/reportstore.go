// internal/app/store/reports/reportstore.go
package reportstore

import (
	"context"
	"time"

	"github.com/dalemusser/wastematch/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reports")}
}

// Create inserts r with a fresh id and the current server time. Any Time
// on r is ignored.
//
// Time has millisecond precision, the resolution of a BSON date, so the
// returned value equals what List reads back. It is never earlier than the
// millisecond in which Create was called.
func (s *Store) Create(ctx context.Context, r models.Report) (models.Report, error) {
	r.ID = primitive.NewObjectID()
	r.Time = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Report{}, err
	}
	return r, nil
}

// List returns every report in insertion order. The result is never nil.
func (s *Store) List(ctx context.Context) ([]models.Report, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reports := []models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Count returns the number of stored reports.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
