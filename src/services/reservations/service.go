package reservations

import (
	"context"
	"errors"
	"log"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/jobs"
	"Backend-CampusHub/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotTaken           = errors.New("this resource is already booked for the selected time slot")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
)

// HasOverlap reports whether an active reservation on the same resource
// and date overlaps [startTime, endTime). Times are zero-padded "HH:MM"
// strings, so lexicographic comparison is chronological.
func HasOverlap(ctx context.Context, resourceName, date, startTime, endTime string) (bool, error) {
	filter := bson.M{
		"resourceName": resourceName,
		"date":         date,
		"status":       bson.M{"$ne": models.ReservationCancelled},
		"startTime":    bson.M{"$lt": endTime},
		"endTime":      bson.M{"$gt": startTime},
	}

	count, err := DB.ReservationCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create books a resource after checking for conflicting reservations,
// then schedules the auto-completion task for the slot's end time.
func Create(ctx context.Context, userID primitive.ObjectID, userName, userEmail string, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if req.EndTime <= req.StartTime {
		return nil, errors.New("endTime must be after startTime")
	}

	taken, err := HasOverlap(ctx, req.ResourceName, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	attendees := req.Attendees
	if attendees == 0 {
		attendees = 1
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		UserName:     userName,
		UserEmail:    userEmail,
		Type:         req.Type,
		ResourceName: req.ResourceName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Purpose:      req.Purpose,
		Attendees:    attendees,
		Notes:        req.Notes,
		Status:       models.ReservationConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = DB.ReservationCollection.InsertOne(ctx, reservation)
	if err != nil {
		return nil, err
	}

	scheduleCompletion(reservation)

	return reservation, nil
}

// scheduleCompletion enqueues the task that marks the reservation
// Completed once its slot ends. Skipped silently when Asynq is not
// configured.
func scheduleCompletion(reservation *models.Reservation) {
	if DB.AsynqClient == nil {
		return
	}

	endsAt, err := time.ParseInLocation("2006-01-02 15:04", reservation.Date+" "+reservation.EndTime, time.Local)
	if err != nil {
		log.Println("⚠️ Could not parse reservation end time:", err)
		return
	}

	task, err := jobs.NewCompleteReservationTask(reservation.ID.Hex())
	if err != nil {
		log.Println("⚠️ Could not build completion task:", err)
		return
	}

	_, err = DB.AsynqClient.Enqueue(task, asynq.ProcessAt(endsAt))
	if err != nil {
		log.Println("⚠️ Could not enqueue completion task:", err)
		return
	}

	log.Printf("✅ Scheduled auto-completion for reservation %s at %s", reservation.ID.Hex(), endsAt)
}

// GetAll returns reservations, optionally filtered. Students only ever
// see their own; the controller passes their id as userID.
func GetAll(ctx context.Context, resourceType, date, status, userID string) ([]models.Reservation, error) {
	filter := bson.M{}
	if resourceType != "" {
		filter["type"] = resourceType
	}
	if date != "" {
		filter["date"] = date
	}
	if status != "" {
		filter["status"] = status
	}
	if userID != "" {
		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, errors.New("invalid user ID")
		}
		filter["userId"] = objID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startTime", Value: 1}})
	cursor, err := DB.ReservationCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// GetByID fetches one reservation.
func GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid reservation ID")
	}

	var reservation models.Reservation
	err = DB.ReservationCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	return &reservation, nil
}

// Cancel marks a reservation Cancelled. Cancelling twice is rejected.
func Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid reservation ID")
	}

	result, err := DB.ReservationCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "status": bson.M{"$ne": models.ReservationCancelled}},
		bson.M{"$set": bson.M{"status": models.ReservationCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// either missing or already cancelled - look it up to tell which
		existing, getErr := GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing.Status == models.ReservationCancelled {
			return nil, ErrAlreadyCancelled
		}
		return nil, ErrReservationNotFound
	}

	return GetByID(ctx, id)
}

// Delete removes a reservation (administrative path).
func Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid reservation ID")
	}

	result, err := DB.ReservationCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrReservationNotFound
	}

	return nil
}
