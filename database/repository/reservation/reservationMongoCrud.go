// File: database/repository/reservation/reservationMongoCrud.go
package reservationRepo

import (
	"fmt"
	"time"

	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new reservation document without an availability
// check. Use CreateIfAvailable for guest-facing creates.
func (r *MongoReservationRepo) Create(res *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// Update modifies an existing reservation document.
func (r *MongoReservationRepo) Update(res *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res.UpdatedAt = time.Now()
	filter := bson.M{"id": res.ID}
	update := bson.M{"$set": res}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation with id %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", res.ID)
	}
	return nil
}

// UpdateStatus transitions a reservation to the given status.
func (r *MongoReservationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}
