// Package geo defines the nearest-organization contract and the helpers
// shared by every implementation of it.
//
// The HTTP layer only depends on Matcher. The Mongo organization store
// answers it with a 2dsphere $near query; MemIndex answers it in memory.
// Either can be swapped for another spatial index without touching handlers.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultRadiusM is the default match radius in meters.
const DefaultRadiusM = 30000

// Query describes one nearest-neighbor lookup.
type Query struct {
	Lat          float64
	Lng          float64
	MaxDistanceM float64 // <= 0 means DefaultRadiusM
	Type         string  // empty means any type
}

// Radius returns the effective search radius in meters.
func (q Query) Radius() float64 {
	if q.MaxDistanceM <= 0 {
		return DefaultRadiusM
	}
	return q.MaxDistanceM
}

// Matcher returns the organization closest to a point within a radius,
// optionally restricted to one type. found is false when nothing qualifies.
type Matcher interface {
	Nearest(ctx context.Context, q Query) (org models.Organization, found bool, err error)
}

var (
	ErrLatRange  = errors.New("latitude must be between -90 and 90")
	ErrLngRange  = errors.New("longitude must be between -180 and 180")
	ErrNotFinite = errors.New("coordinate must be a finite number")
)

// ValidateLatLng rejects NaN, infinities and out-of-range coordinates.
func ValidateLatLng(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return ErrNotFinite
	}
	if lat < -90 || lat > 90 {
		return ErrLatRange
	}
	if lng < -180 || lng > 180 {
		return ErrLngRange
	}
	return nil
}

// ToOrb converts a stored point to an orb.Point (X=lng, Y=lat).
func ToOrb(p models.GeoPoint) orb.Point {
	return orb.Point{p.Lng(), p.Lat()}
}

// DistanceM returns the great-circle distance in meters between two points.
func DistanceM(a, b models.GeoPoint) float64 {
	return orbgeo.DistanceHaversine(ToOrb(a), ToOrb(b))
}

// DirectionsURL builds the Google Maps directions link for a destination.
func DirectionsURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s", formatCoord(lat), formatCoord(lng))
}

// DirectionsURLFor builds the directions link for an organization's location.
func DirectionsURLFor(org models.Organization) string {
	return DirectionsURL(org.Location.Lat(), org.Location.Lng())
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
