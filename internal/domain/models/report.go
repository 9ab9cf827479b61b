// internal/domain/models/report.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a user-submitted record of agricultural waste available for pickup.
type Report struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type     string             `bson:"type" json:"type"`
	City     string             `bson:"city" json:"city"`
	Quantity float64            `bson:"quantity" json:"quantity"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"`
	Time     time.Time          `bson:"time" json:"time"` // set by the store on insert
}
