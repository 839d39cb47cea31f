package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation resource types.
const (
	ResourceDesk        = "desk"
	ResourceLab         = "lab"
	ResourceMeetingRoom = "meeting-room"
)

// Reservation status.
const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
	ReservationCompleted = "Completed"
)

// Reservation การจองพื้นที่ - a desk/lab/meeting-room booking. UserName and
// UserEmail are denormalized for display, same as the evaluation snapshots.
type Reservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	UserName     string             `bson:"userName" json:"userName"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	Type         string             `bson:"type" json:"type"`
	ResourceName string             `bson:"resourceName" json:"resourceName"`
	Date         string             `bson:"date" json:"date"`           // "2006-01-02"
	StartTime    string             `bson:"startTime" json:"startTime"` // "09:00"
	EndTime      string             `bson:"endTime" json:"endTime"`     // "11:00"
	Purpose      string             `bson:"purpose" json:"purpose"`
	Attendees    int                `bson:"attendees" json:"attendees"`
	Notes        string             `bson:"notes" json:"notes"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateReservationRequest books a resource for a time slot.
type CreateReservationRequest struct {
	Type         string `json:"type" validate:"required,oneof=desk lab meeting-room"`
	ResourceName string `json:"resourceName" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime      string `json:"endTime" validate:"required,datetime=15:04"`
	Purpose      string `json:"purpose" validate:"required"`
	Attendees    int    `json:"attendees" validate:"omitempty,min=1"`
	Notes        string `json:"notes"`
}
