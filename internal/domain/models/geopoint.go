// internal/domain/models/geopoint.go
package models

// GeoJSONPoint is the only geometry type stored in location fields.
const GeoJSONPoint = "Point"

// GeoPoint is a GeoJSON point as stored for the 2dsphere index.
//
// Coordinates are always [longitude, latitude]. Build values with
// NewGeoPoint so the order is never written by hand.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint returns a GeoJSON point for (lat, lng).
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: GeoJSONPoint, Coordinates: []float64{lng, lat}}
}

// Lat returns the latitude, or 0 for a malformed point.
func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Lng returns the longitude, or 0 for a malformed point.
func (p GeoPoint) Lng() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Valid reports whether the point has exactly two coordinates.
func (p GeoPoint) Valid() bool {
	return p.Type == GeoJSONPoint && len(p.Coordinates) == 2
}
