package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Consultation การนัดปรึกษา - a student's request for a consultation slot
// with a faculty member.
type Consultation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Name          string             `bson:"name" json:"name"`
	Course        string             `bson:"course" json:"course"`
	PreferredTime string             `bson:"preferredTime" json:"preferredTime"`
	Faculty       string             `bson:"faculty" json:"faculty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateConsultationRequest requests a consultation slot.
type CreateConsultationRequest struct {
	Course        string `json:"course" validate:"required"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	Faculty       string `json:"faculty" validate:"required"`
}
