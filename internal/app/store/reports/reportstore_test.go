package reportstore_test

import (
	"testing"
	"time"

	reportstore "github.com/dalemusser/wastematch/internal/app/store/reports"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/dalemusser/wastematch/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	clientTime := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	// Stored times have millisecond precision.
	before := time.Now().UTC().Truncate(time.Millisecond)

	created, err := store.Create(ctx, models.Report{
		Type:     "稻草",
		City:     "南投市",
		Quantity: 12.5,
		Name:     "王小明",
		Phone:    "0912345678",
		Time:     clientTime,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	after := time.Now().UTC()
	if created.Time.Before(before) || created.Time.After(after) {
		t.Errorf("time %v outside submission window [%v, %v]", created.Time, before, after)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 report, got %d", len(list))
	}
	got := list[0]
	if got.ID != created.ID || got.Quantity != 12.5 || got.Type != "稻草" {
		t.Errorf("stored report mismatch: %+v", got)
	}
	if !got.Time.Equal(created.Time) {
		t.Errorf("time: got %v, want %v", got.Time, created.Time)
	}
}

func TestStore_List_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil {
		t.Fatal("List returned nil slice")
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

func TestStore_List_Order(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateReport(ctx, "稻草", "南投市", 1)
	fx.CreateReport(ctx, "菇包", "南投市", 2)
	fx.CreateReport(ctx, "茶渣", "台中市", 3)

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(list))
	}
	for i, want := range []float64{1, 2, 3} {
		if list[i].Quantity != want {
			t.Errorf("report %d: quantity %v, want %v", i, list[i].Quantity, want)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Count: got %d, want 3", n)
	}
}
