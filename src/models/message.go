package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message ข้อความ - one direct message. SenderName is denormalized so the
// inbox renders without a join.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	SenderName string             `bson:"senderName" json:"senderName"`
	ReceiverID primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	Content    string             `bson:"content" json:"content"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

// SendMessageRequest sends one direct message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}
