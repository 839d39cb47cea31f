package jobs

import (
	"log"

	"Backend-CampusHub/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the Asynq worker alongside the HTTP server. It is a
// no-op when Redis/Asynq are not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompleteReservation, HandleCompleteReservationTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}
