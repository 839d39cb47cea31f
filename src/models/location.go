package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room is one room within a floor/block, e.g. number "16", code "7B-16".
type Room struct {
	Number string `bson:"number" json:"number"`
	Code   string `bson:"code" json:"code"`
}

// Location ตำแหน่งในอาคาร - a physical floor/block referenced by a QR code.
// QRCodeRef is the payload encoded into the printed QR poster; scanning it
// resolves the location without knowing its database id.
type Location struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Floor         int                `bson:"floor" json:"floor"`
	Block         string             `bson:"block" json:"block"`
	Rooms         []Room             `bson:"rooms" json:"rooms"`
	ClosestBlocks []string           `bson:"closestBlocks" json:"closestBlocks"`
	ClosestRooms  []string           `bson:"closestRooms" json:"closestRooms"`
	QRCodeRef     string             `bson:"qrCodeRef" json:"qrCodeRef"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateLocationRequest registers a floor/block. QRCodeRef is optional -
// a fresh ref is generated when omitted.
type CreateLocationRequest struct {
	Floor         int      `json:"floor" validate:"gte=0"`
	Block         string   `json:"block" validate:"required"`
	Rooms         []Room   `json:"rooms"`
	ClosestBlocks []string `json:"closestBlocks"`
	ClosestRooms  []string `json:"closestRooms"`
	QRCodeRef     string   `json:"qrCodeRef"`
}
