package organizations_test

import (
	"context"
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/wastematch/internal/app/features/errors"
	"github.com/dalemusser/wastematch/internal/app/features/organizations"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/dalemusser/wastematch/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*organizations.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return organizations.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func serve(h *organizations.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	r := chi.NewRouter()
	r.Group(organizations.Routes(h))
	r.ServeHTTP(rec, req)
	return rec
}

func TestServeList_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, testutil.NewRequest("GET", "/orgs"))
	rec.AssertStatus(t, http.StatusOK)
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body: got %q, want []", body)
	}
}

func TestServeList_Filters(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateOrganization(ctx, "A", "稻草", "南投市", 23.83, 120.68)
	fx.CreateOrganization(ctx, "B", "菇包", "南投市", 23.82, 120.66)
	fx.CreateOrganization(ctx, "C", "稻草", "台中市", 24.14, 120.68)

	tests := []struct {
		target string
		want   int
	}{
		{"/orgs", 3},
		{"/orgs?type=稻草", 2},
		{"/orgs?city=南投市", 2},
		{"/orgs?type=稻草&city=台中市", 1},
		{"/orgs?type=&city=", 3},
		{"/orgs?type=茶渣", 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(h, testutil.NewRequest("GET", tt.target))
			rec.AssertStatus(t, http.StatusOK)
			var got []models.Organization
			rec.DecodeJSON(t, &got)
			if len(got) != tt.want {
				t.Errorf("got %d organizations, want %d", len(got), tt.want)
			}
		})
	}
}

func TestServeTypesAndCities(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateOrganization(ctx, "A", "稻草", "南投市", 23.83, 120.68)
	fx.CreateOrganization(ctx, "B", "稻草", "南投市", 23.82, 120.66)
	fx.CreateOrganization(ctx, "C", "菇包", "台中市", 24.14, 120.68)

	rec := serve(h, testutil.NewRequest("GET", "/types"))
	rec.AssertStatus(t, http.StatusOK)
	var types []string
	rec.DecodeJSON(t, &types)
	if len(types) != 2 {
		t.Errorf("types: got %v, want 2 distinct values", types)
	}

	rec = serve(h, testutil.NewRequest("GET", "/cities"))
	rec.AssertStatus(t, http.StatusOK)
	var cities []string
	rec.DecodeJSON(t, &cities)
	if len(cities) != 2 {
		t.Errorf("cities: got %v, want 2 distinct values", cities)
	}
}

func TestHandleCreate(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"numeric coordinates", map[string]any{
			"name": "中興資源中心", "type": "稻草", "city": "南投市",
			"phone": "049-2563472", "address": "南投市中正路1號",
			"lat": 23.8385, "lng": 120.6845,
		}},
		{"string coordinates", map[string]any{
			"name": "中興資源中心", "type": "稻草", "city": "南投市",
			"lat": "23.8385", "lng": " 120.6845 ",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, db := newTestHandler(t)

			rec := serve(h, testutil.NewJSONRequest(t, "POST", "/org", tt.body))
			rec.AssertStatus(t, http.StatusOK)

			var resp struct {
				Message      string              `json:"message"`
				Organization models.Organization `json:"organization"`
			}
			rec.DecodeJSON(t, &resp)
			if resp.Message != "業者新增成功" {
				t.Errorf("message: got %q", resp.Message)
			}
			if resp.Organization.ID.IsZero() {
				t.Error("expected organization id in response")
			}

			ctx, cancel := testutil.TestContext()
			defer cancel()
			var stored bson.M
			if err := db.Collection("organizations").FindOne(ctx, bson.M{"_id": resp.Organization.ID}).Decode(&stored); err != nil {
				t.Fatalf("FindOne failed: %v", err)
			}
			coords := stored["location"].(bson.M)["coordinates"].(bson.A)
			if coords[0] != 120.6845 || coords[1] != 23.8385 {
				t.Errorf("stored coordinates: got %v, want [120.6845 23.8385]", coords)
			}
		})
	}
}

func TestHandleCreate_Invalid(t *testing.T) {
	h, db := newTestHandler(t)

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", `{"name":`},
		{"missing name", map[string]any{"type": "稻草", "lat": 23.8, "lng": 120.6}},
		{"missing type", map[string]any{"name": "A", "lat": 23.8, "lng": 120.6}},
		{"missing lat", map[string]any{"name": "A", "type": "稻草", "lng": 120.6}},
		{"non-numeric lng", map[string]any{"name": "A", "type": "稻草", "lat": 23.8, "lng": "east"}},
		{"lat out of range", map[string]any{"name": "A", "type": "稻草", "lat": 123.8, "lng": 23.6}},
		{"lng out of range", map[string]any{"name": "A", "type": "稻草", "lat": 23.8, "lng": 220.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, testutil.NewJSONRequest(t, "POST", "/org", tt.body))
			rec.AssertStatus(t, http.StatusBadRequest)
			if rec.Message(t) == "" {
				t.Error("expected an error message")
			}
		})
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := db.Collection("organizations").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no inserts, got %d", n)
	}
}

func TestServeSeed(t *testing.T) {
	h, db := newTestHandler(t)

	for i := 0; i < 2; i++ {
		rec := serve(h, testutil.NewRequest("GET", "/seed-orgs"))
		rec.AssertStatus(t, http.StatusOK)
		if msg := rec.Message(t); msg != "已匯入初始業者資料" {
			t.Errorf("message: got %q", msg)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n, err := db.Collection("organizations").CountDocuments(ctx, bson.M{"name": "中興資源中心"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected seeding twice to duplicate, got %d copies", n)
	}
}
