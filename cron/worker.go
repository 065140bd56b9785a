package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"innbook/config"
	"innbook/services/reservation"

	"github.com/hibiken/asynq"
)

// InitHoldWorker runs the hold-expiry worker in the background. It
// releases PENDING reservations whose hold window elapsed without a
// checkout confirmation.
func InitHoldWorker(resSvc reservation.ReservationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(reservation.TypeReservationExpire, handleExpiryTask(resSvc))

	go func() {
		log.Println("[HoldWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HoldWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HoldWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpiryTask(resSvc reservation.ReservationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reservation.ExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[HoldWorker] invalid payload: %v", err)
			return err
		}

		if err := resSvc.ExpireIfPending(p.ReservationID); err != nil {
			log.Printf("[HoldWorker] failed to expire reservation %s: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}
