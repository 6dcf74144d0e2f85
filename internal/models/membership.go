package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership is a single membership application. Records are append-only:
// nothing in the API updates or deletes them.
type Membership struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference    string             `bson:"reference" json:"reference"`
	SelectedPlan string             `bson:"selectedPlan" json:"selectedPlan"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email" json:"email"`
	Company      string             `bson:"company" json:"company"`
	Message      string             `bson:"message" json:"message"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
