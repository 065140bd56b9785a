package reservation

import (
	"encoding/json"
	"fmt"
	"time"

	"innbook/config"

	"github.com/hibiken/asynq"
)

// TypeReservationExpire is the asynq task type for hold expiry.
const TypeReservationExpire = "reservation:expire"

// ExpiryPayload is the task payload for TypeReservationExpire.
type ExpiryPayload struct {
	ReservationID string `json:"reservationId"`
}

// AsynqHoldScheduler schedules hold-expiry tasks on the redis-backed
// asynq queue.
type AsynqHoldScheduler struct {
	client *asynq.Client
}

// NewAsynqHoldScheduler creates a scheduler backed by the hold queue DB.
func NewAsynqHoldScheduler() *AsynqHoldScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	})
	return &AsynqHoldScheduler{client: client}
}

// ScheduleExpiry enqueues an expiry task that fires after the
// configured hold window.
func (s *AsynqHoldScheduler) ScheduleExpiry(reservationID string) error {
	payload, err := json.Marshal(ExpiryPayload{ReservationID: reservationID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}

	delay := time.Duration(config.AppConfig.PendingHoldMinutes) * time.Minute
	task := asynq.NewTask(TypeReservationExpire, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}
