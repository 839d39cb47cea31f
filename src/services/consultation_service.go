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

var ErrConsultationNotFound = errors.New("consultation not found")

// CreateConsultation records a consultation request.
func CreateConsultation(ctx context.Context, userID primitive.ObjectID, userName string, req *models.CreateConsultationRequest) (*models.Consultation, error) {
	consultation := &models.Consultation{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Name:          userName,
		Course:        req.Course,
		PreferredTime: req.PreferredTime,
		Faculty:       req.Faculty,
		CreatedAt:     time.Now(),
	}

	_, err := DB.ConsultationCollection.InsertOne(ctx, consultation)
	if err != nil {
		return nil, err
	}

	return consultation, nil
}

// GetConsultations lists requests, optionally scoped to one user or one
// faculty member.
func GetConsultations(ctx context.Context, userID, faculty string) ([]models.Consultation, error) {
	filter := bson.M{}
	if userID != "" {
		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, errors.New("invalid user ID")
		}
		filter["userId"] = objID
	}
	if faculty != "" {
		filter["faculty"] = faculty
	}

	cursor, err := DB.ConsultationCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	consultations := []models.Consultation{}
	if err = cursor.All(ctx, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

// DeleteConsultation removes a request.
func DeleteConsultation(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid consultation ID")
	}

	result, err := DB.ConsultationCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrConsultationNotFound
	}

	return nil
}
