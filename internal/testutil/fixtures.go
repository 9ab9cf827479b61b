package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/wastematch/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization inserts an organization of the given type at lat/lng.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, typ, city string, lat, lng float64) models.Organization {
	f.t.Helper()

	org := models.Organization{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Type:     typ,
		City:     city,
		Phone:    "049-0000000",
		Address:  city + "測試路1號",
		Location: models.NewGeoPoint(lat, lng),
	}
	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create organization: %v", err)
	}
	return org
}

// CreateReport inserts a report with the given type and city.
func (f *Fixtures) CreateReport(ctx context.Context, typ, city string, quantity float64) models.Report {
	f.t.Helper()

	rep := models.Report{
		ID:       primitive.NewObjectID(),
		Type:     typ,
		City:     city,
		Quantity: quantity,
		Name:     "測試農友",
		Phone:    "0912000000",
		Time:     time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection("reports").InsertOne(ctx, rep); err != nil {
		f.t.Fatalf("failed to create report: %v", err)
	}
	return rep
}
