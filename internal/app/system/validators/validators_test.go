package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/wastematch/internal/app/system/validators"
	"github.com/dalemusser/wastematch/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"reports", "organizations"} {
		if !have[want] {
			t.Errorf("expected collection %q to exist", want)
		}
	}
}

func TestReportsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection("reports")

	valid := bson.M{
		"type": "稻草", "city": "南投市", "quantity": 12.5,
		"name": "王小明", "phone": "0912345678", "time": time.Now().UTC(),
	}
	if _, err := coll.InsertOne(ctx, valid); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}

	missingTime := bson.M{
		"type": "稻草", "city": "南投市", "quantity": 1.0,
		"name": "王小明", "phone": "0912345678",
	}
	if _, err := coll.InsertOne(ctx, missingTime); err == nil {
		t.Error("report without time should be rejected")
	}

	negative := bson.M{
		"type": "稻草", "city": "南投市", "quantity": -3.0,
		"name": "王小明", "phone": "0912345678", "time": time.Now().UTC(),
	}
	if _, err := coll.InsertOne(ctx, negative); err == nil {
		t.Error("negative quantity should be rejected")
	}
}

func TestOrganizationsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection("organizations")

	valid := bson.M{
		"name": "中興資源中心", "type": "稻草", "city": "南投市",
		"location": bson.M{"type": "Point", "coordinates": bson.A{120.6845, 23.8385}},
	}
	if _, err := coll.InsertOne(ctx, valid); err != nil {
		t.Fatalf("valid organization rejected: %v", err)
	}

	tests := []struct {
		name string
		doc  bson.M
	}{
		{"missing location", bson.M{"name": "a", "type": "稻草"}},
		{"blank name", bson.M{
			"name": "  ", "type": "稻草",
			"location": bson.M{"type": "Point", "coordinates": bson.A{120.0, 23.0}},
		}},
		{"wrong geometry", bson.M{
			"name": "a", "type": "稻草",
			"location": bson.M{"type": "LineString", "coordinates": bson.A{120.0, 23.0}},
		}},
		{"three coordinates", bson.M{
			"name": "a", "type": "稻草",
			"location": bson.M{"type": "Point", "coordinates": bson.A{120.0, 23.0, 1.0}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := coll.InsertOne(ctx, tt.doc); err == nil {
				t.Errorf("%s: insert should be rejected", tt.name)
			}
		})
	}
}
