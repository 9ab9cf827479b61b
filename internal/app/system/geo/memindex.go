// internal/app/system/geo/memindex.go
package geo

import (
	"context"
	"sync"

	"github.com/dalemusser/wastematch/internal/domain/models"
)

// MemIndex is an in-memory Matcher. It scans every entry and ranks by
// haversine distance, so it suits small datasets and tests.
// Ties keep insertion order.
type MemIndex struct {
	mu   sync.RWMutex
	orgs []models.Organization
}

// NewMemIndex returns an index preloaded with orgs.
func NewMemIndex(orgs ...models.Organization) *MemIndex {
	idx := &MemIndex{}
	idx.Add(orgs...)
	return idx
}

// Add appends organizations to the index.
func (m *MemIndex) Add(orgs ...models.Organization) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orgs = append(m.orgs, orgs...)
}

// Nearest implements Matcher.
func (m *MemIndex) Nearest(ctx context.Context, q Query) (models.Organization, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Organization{}, false, err
	}
	if err := ValidateLatLng(q.Lat, q.Lng); err != nil {
		return models.Organization{}, false, err
	}

	origin := models.NewGeoPoint(q.Lat, q.Lng)
	radius := q.Radius()

	m.mu.RLock()
	defer m.mu.RUnlock()

	best := -1
	bestDist := 0.0
	for i, o := range m.orgs {
		if q.Type != "" && o.Type != q.Type {
			continue
		}
		if !o.Location.Valid() {
			continue
		}
		d := DistanceM(origin, o.Location)
		if d > radius {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return models.Organization{}, false, nil
	}
	return m.orgs[best], true, nil
}
