// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"sort"

	"github.com/dalemusser/wastematch/internal/app/system/geo"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrInvalidLocation is returned when an organization has no usable point.
var ErrInvalidLocation = errors.New("organization location must be a GeoJSON point")

var _ geo.Matcher = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// Filter selects organizations by exact type and city. Empty fields are
// unconstrained.
type Filter struct {
	Type string
	City string
}

func (f Filter) bson() bson.M {
	m := bson.M{}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.City != "" {
		m["city"] = f.City
	}
	return m
}

func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	if !org.Location.Valid() {
		return models.Organization{}, ErrInvalidLocation
	}
	org.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// CreateMany inserts orgs in a single write and returns them with ids set.
func (s *Store) CreateMany(ctx context.Context, orgs []models.Organization) ([]models.Organization, error) {
	if len(orgs) == 0 {
		return []models.Organization{}, nil
	}
	out := make([]models.Organization, len(orgs))
	docs := make([]interface{}, len(orgs))
	for i, org := range orgs {
		if !org.Location.Valid() {
			return nil, ErrInvalidLocation
		}
		org.ID = primitive.NewObjectID()
		out[i] = org
		docs[i] = org
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return out, nil
}

// Find returns organizations matching f in insertion order. The result is
// never nil.
func (s *Store) Find(ctx context.Context, f Filter) ([]models.Organization, error) {
	cur, err := s.c.Find(ctx, f.bson(), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orgs := []models.Organization{}
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// DistinctTypes returns the sorted set of non-empty organization types.
func (s *Store) DistinctTypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "type")
}

// DistinctCities returns the sorted set of non-empty organization cities.
func (s *Store) DistinctCities(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "city")
}

func (s *Store) distinct(ctx context.Context, field string) ([]string, error) {
	vals, err := s.c.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if str, ok := v.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Nearest returns the closest organization within q's radius, optionally of
// q.Type. Ordering comes from the 2dsphere index; found is false when nothing
// is in range.
func (s *Store) Nearest(ctx context.Context, q geo.Query) (models.Organization, bool, error) {
	if err := geo.ValidateLatLng(q.Lat, q.Lng); err != nil {
		return models.Organization{}, false, err
	}

	filter := bson.D{{Key: "location", Value: bson.M{
		"$near": bson.M{
			"$geometry": bson.M{
				"type":        models.GeoJSONPoint,
				"coordinates": bson.A{q.Lng, q.Lat},
			},
			"$maxDistance": q.Radius(),
		},
	}}}
	if q.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: q.Type})
	}

	var org models.Organization
	err := s.c.FindOne(ctx, filter).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Organization{}, false, nil
	}
	if err != nil {
		return models.Organization{}, false, err
	}
	return org, true, nil
}

// SeedOrganizations returns the demonstration organizations loaded by the
// seed endpoint.
func SeedOrganizations() []models.Organization {
	return []models.Organization{
		{
			Name:     "中興資源中心",
			Type:     models.WasteTypeStraw,
			City:     "南投市",
			Phone:    "049-2563472",
			Address:  "南投市中正路1號",
			Location: models.NewGeoPoint(23.8385, 120.6845),
		},
		{
			Name:     "示範再生工坊",
			Type:     models.WasteTypeMushroomBags,
			City:     "南投市",
			Phone:    "049-1111222",
			Address:  "南投市測試路22號",
			Location: models.NewGeoPoint(23.8299, 120.6623),
		},
	}
}
