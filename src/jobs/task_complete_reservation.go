package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-CampusHub/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCompleteReservationTask marks a Confirmed reservation Completed
// after its slot ends. Cancelled reservations are left alone.
func HandleCompleteReservationTask(ctx context.Context, t *asynq.Task) error {
	var payload ReservationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ReservationID)
	if err != nil {
		log.Println("❌ Invalid reservation id in payload:", payload.ReservationID)
		return err
	}

	var reservation bson.M
	err = database.ReservationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Reservation not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // not an error
		}
		return err
	}

	_, err = database.ReservationCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": "Confirmed"},
		bson.M{"$set": bson.M{"status": "Completed"}},
	)
	if err != nil {
		log.Println("❌ Failed to complete reservation:", err)
		return err
	}

	log.Println("✅ Reservation auto-completed:", id.Hex())
	return nil
}
