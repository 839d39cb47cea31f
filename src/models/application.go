package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application status.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application ใบสมัครเข้าร่วมทีม - one student applying to one group post.
// Duplicates are blocked by the (groupPostId, applicantId) unique index.
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupPostID primitive.ObjectID `bson:"groupPostId" json:"groupPostId"`
	ApplicantID primitive.ObjectID `bson:"applicantId" json:"applicantId"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyRequest submits an application to a group post.
type ApplyRequest struct {
	GroupPostID string `json:"groupPostId" validate:"required"`
	Message     string `json:"message"`
}
