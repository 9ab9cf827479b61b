package organizationstore_test

import (
	"context"
	"testing"

	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/geo"
	"github.com/dalemusser/wastematch/internal/app/system/indexes"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/dalemusser/wastematch/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Nearest needs the 2dsphere index.
func setup(t *testing.T) (*mongo.Database, *organizationstore.Store, context.Context) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	t.Cleanup(cancel)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return db, organizationstore.New(db), ctx
}

func TestStore_Create(t *testing.T) {
	db, store, ctx := setup(t)

	created, err := store.Create(ctx, models.Organization{
		Name:     "中興資源中心",
		Type:     "稻草",
		City:     "南投市",
		Location: models.NewGeoPoint(23.8385, 120.6845),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}

	var raw bson.M
	if err := db.Collection("organizations").FindOne(ctx, bson.M{"_id": created.ID}).Decode(&raw); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	loc := raw["location"].(bson.M)
	coords := loc["coordinates"].(bson.A)
	if coords[0] != 120.6845 || coords[1] != 23.8385 {
		t.Errorf("coordinates: got %v, want [120.6845 23.8385]", coords)
	}
	if loc["type"] != "Point" {
		t.Errorf("location type: got %v, want Point", loc["type"])
	}
}

func TestStore_Create_InvalidLocation(t *testing.T) {
	_, store, ctx := setup(t)

	_, err := store.Create(ctx, models.Organization{Name: "x", Type: "稻草"})
	if err != organizationstore.ErrInvalidLocation {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestStore_CreateMany(t *testing.T) {
	_, store, ctx := setup(t)

	created, err := store.CreateMany(ctx, organizationstore.SeedOrganizations())
	if err != nil {
		t.Fatalf("CreateMany failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 organizations, got %d", len(created))
	}
	for _, o := range created {
		if o.ID == primitive.NilObjectID {
			t.Errorf("%s: expected ID to be assigned", o.Name)
		}
	}

	// Seeding again duplicates; there is no uniqueness constraint.
	if _, err := store.CreateMany(ctx, organizationstore.SeedOrganizations()); err != nil {
		t.Fatalf("second CreateMany failed: %v", err)
	}
	all, err := store.Find(ctx, organizationstore.Filter{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 organizations after seeding twice, got %d", len(all))
	}
}

func TestStore_Find(t *testing.T) {
	db, store, ctx := setup(t)
	fx := testutil.NewFixtures(t, db)

	fx.CreateOrganization(ctx, "A", "稻草", "南投市", 23.83, 120.68)
	fx.CreateOrganization(ctx, "B", "菇包", "南投市", 23.82, 120.66)
	fx.CreateOrganization(ctx, "C", "稻草", "台中市", 24.14, 120.68)

	tests := []struct {
		name   string
		filter organizationstore.Filter
		want   []string
	}{
		{"no filter", organizationstore.Filter{}, []string{"A", "B", "C"}},
		{"type only", organizationstore.Filter{Type: "稻草"}, []string{"A", "C"}},
		{"city only", organizationstore.Filter{City: "南投市"}, []string{"A", "B"}},
		{"type and city", organizationstore.Filter{Type: "稻草", City: "台中市"}, []string{"C"}},
		{"no match", organizationstore.Filter{Type: "茶渣"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Find(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if got == nil {
				t.Fatal("Find returned nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, o := range got {
				if o.Name != tt.want[i] {
					t.Errorf("result %d: got %q, want %q", i, o.Name, tt.want[i])
				}
			}
		})
	}
}

func TestStore_Distinct(t *testing.T) {
	db, store, ctx := setup(t)
	fx := testutil.NewFixtures(t, db)

	types, err := store.DistinctTypes(ctx)
	if err != nil {
		t.Fatalf("DistinctTypes failed: %v", err)
	}
	if types == nil || len(types) != 0 {
		t.Errorf("empty collection: got %v, want []", types)
	}

	fx.CreateOrganization(ctx, "A", "稻草", "南投市", 23.83, 120.68)
	fx.CreateOrganization(ctx, "B", "菇包", "南投市", 23.82, 120.66)
	fx.CreateOrganization(ctx, "C", "稻草", "台中市", 24.14, 120.68)

	types, err = store.DistinctTypes(ctx)
	if err != nil {
		t.Fatalf("DistinctTypes failed: %v", err)
	}
	if len(types) != 2 {
		t.Errorf("types: got %v, want 2 distinct values", types)
	}

	cities, err := store.DistinctCities(ctx)
	if err != nil {
		t.Fatalf("DistinctCities failed: %v", err)
	}
	if len(cities) != 2 {
		t.Errorf("cities: got %v, want 2 distinct values", cities)
	}
}

func TestStore_Nearest(t *testing.T) {
	_, store, ctx := setup(t)

	if _, err := store.CreateMany(ctx, organizationstore.SeedOrganizations()); err != nil {
		t.Fatalf("CreateMany failed: %v", err)
	}

	// A few hundred meters from 中興資源中心.
	got, found, err := store.Nearest(ctx, geo.Query{Lat: 23.84, Lng: 120.68, Type: "稻草"})
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	if got.Name != "中興資源中心" {
		t.Errorf("got %q, want 中興資源中心", got.Name)
	}

	// Without a type the closest of both wins.
	got, found, err = store.Nearest(ctx, geo.Query{Lat: 23.8299, Lng: 120.6623})
	if err != nil || !found {
		t.Fatalf("Nearest any-type: found=%v err=%v", found, err)
	}
	if got.Name != "示範再生工坊" {
		t.Errorf("got %q, want 示範再生工坊", got.Name)
	}
}

func TestStore_Nearest_NoMatch(t *testing.T) {
	_, store, ctx := setup(t)

	if _, err := store.CreateMany(ctx, organizationstore.SeedOrganizations()); err != nil {
		t.Fatalf("CreateMany failed: %v", err)
	}

	tests := []struct {
		name string
		q    geo.Query
	}{
		{"taipei is out of range", geo.Query{Lat: 25.03, Lng: 121.56}},
		{"unknown type", geo.Query{Lat: 23.84, Lng: 120.68, Type: "茶渣"}},
		{"tiny radius", geo.Query{Lat: 23.90, Lng: 120.68, MaxDistanceM: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found, err := store.Nearest(ctx, tt.q)
			if err != nil {
				t.Fatalf("Nearest failed: %v", err)
			}
			if found {
				t.Error("expected no match")
			}
		})
	}
}

func TestStore_Nearest_InvalidPoint(t *testing.T) {
	_, store, ctx := setup(t)

	_, _, err := store.Nearest(ctx, geo.Query{Lat: 91, Lng: 120})
	if err != geo.ErrLatRange {
		t.Errorf("expected ErrLatRange, got %v", err)
	}
}
