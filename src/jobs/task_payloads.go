package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCompleteReservation = "reservation:complete"

type ReservationPayload struct {
	ReservationID string `json:"reservation_id"`
}

// NewCompleteReservationTask builds the task that closes out a reservation
// once its time slot has ended.
func NewCompleteReservationTask(reservationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReservationPayload{ReservationID: reservationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCompleteReservation, payload), nil
}
