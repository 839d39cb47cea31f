package services

import (
	"context"
	"errors"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SendMessage stores one direct message. The sender name is snapshotted
// so conversations render without user lookups.
func SendMessage(ctx context.Context, senderID primitive.ObjectID, senderName string, req *models.SendMessageRequest) (*models.Message, error) {
	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		return nil, errors.New("invalid receiver ID")
	}

	message := &models.Message{
		ID:         primitive.NewObjectID(),
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: receiverID,
		Content:    req.Content,
		IsRead:     false,
		Timestamp:  time.Now(),
	}

	_, err = DB.MessageCollection.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}

	return message, nil
}

// GetConversation returns both directions of a 1-on-1 thread in
// chronological order.
func GetConversation(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	otherObjID, err := primitive.ObjectIDFromHex(otherID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	filter := bson.M{"$or": []bson.M{
		{"senderId": userObjID, "receiverId": otherObjID},
		{"senderId": otherObjID, "receiverId": userObjID},
	}}

	cursor, err := DB.MessageCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkMessagesRead marks every unread message from senderID to readerID
// as read.
func MarkMessagesRead(ctx context.Context, readerID primitive.ObjectID, senderID string) (int64, error) {
	senderObjID, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return 0, errors.New("invalid sender ID")
	}

	result, err := DB.MessageCollection.UpdateMany(ctx,
		bson.M{"senderId": senderObjID, "receiverId": readerID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
