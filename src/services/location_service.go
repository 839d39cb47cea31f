package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/qrcode"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrQRCodeRefTaken   = errors.New("this QR code ref is already assigned to another location")
)

// CreateLocation registers a floor/block. A missing qrCodeRef gets a
// generated one; either way the unique index keeps refs 1:1.
func CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.Location, error) {
	ref := req.QRCodeRef
	if ref == "" {
		ref = uuid.NewString()
	}

	now := time.Now()
	location := &models.Location{
		ID:            primitive.NewObjectID(),
		Floor:         req.Floor,
		Block:         req.Block,
		Rooms:         req.Rooms,
		ClosestBlocks: req.ClosestBlocks,
		ClosestRooms:  req.ClosestRooms,
		QRCodeRef:     ref,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if location.Rooms == nil {
		location.Rooms = []models.Room{}
	}
	if location.ClosestBlocks == nil {
		location.ClosestBlocks = []string{}
	}
	if location.ClosestRooms == nil {
		location.ClosestRooms = []string{}
	}

	_, err := DB.LocationCollection.InsertOne(ctx, location)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrQRCodeRefTaken
		}
		return nil, err
	}

	return location, nil
}

// GetAllLocations returns every location sorted by floor then block.
func GetAllLocations(ctx context.Context) ([]models.Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "floor", Value: 1}, {Key: "block", Value: 1}})
	cursor, err := DB.LocationCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err = cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetLocationByID fetches one location.
func GetLocationByID(ctx context.Context, id string) (*models.Location, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid location ID")
	}

	var location models.Location
	err = DB.LocationCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &location, nil
}

// GetLocationByQRCodeRef resolves the payload of a scanned QR poster.
// This is the lookup path a phone hits after scanning.
func GetLocationByQRCodeRef(ctx context.Context, ref string) (*models.Location, error) {
	var location models.Location
	err := DB.LocationCollection.FindOne(ctx, bson.M{"qrCodeRef": ref}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &location, nil
}

// UpdateLocation replaces the mutable fields of a location.
func UpdateLocation(ctx context.Context, id string, req *models.CreateLocationRequest) (*models.Location, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid location ID")
	}

	set := bson.M{
		"floor":     req.Floor,
		"block":     req.Block,
		"updatedAt": time.Now(),
	}
	if req.Rooms != nil {
		set["rooms"] = req.Rooms
	}
	if req.ClosestBlocks != nil {
		set["closestBlocks"] = req.ClosestBlocks
	}
	if req.ClosestRooms != nil {
		set["closestRooms"] = req.ClosestRooms
	}
	if req.QRCodeRef != "" {
		set["qrCodeRef"] = req.QRCodeRef
	}

	result, err := DB.LocationCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrQRCodeRefTaken
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrLocationNotFound
	}

	return GetLocationByID(ctx, id)
}

// DeleteLocation removes a location.
func DeleteLocation(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid location ID")
	}

	result, err := DB.LocationCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrLocationNotFound
	}

	return nil
}

// CreateLocationQRCode renders the printable QR poster for a location.
// The encoded payload is the qrCodeRef so a reprinted poster keeps working
// after location edits.
func CreateLocationQRCode(ctx context.Context, id string) (string, error) {
	location, err := GetLocationByID(ctx, id)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("location_%s_%d", location.ID.Hex(), time.Now().Unix())
	if err := qrcode.GenerateQRCode(location.QRCodeRef, fileName); err != nil {
		return "", err
	}

	return fmt.Sprintf("/public/qrcodes/%s.png", fileName), nil
}
