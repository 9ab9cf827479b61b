// internal/domain/models/organization.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a registered waste-reuse entity at a fixed location.
// The JSON id field keeps the "_id" name existing clients already read.
type Organization struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Type     string             `bson:"type" json:"type"`
	City     string             `bson:"city" json:"city"`
	Phone    string             `bson:"phone" json:"phone"`
	Address  string             `bson:"address" json:"address"`
	Location GeoPoint           `bson:"location" json:"location"`
}
