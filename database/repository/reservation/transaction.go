package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfAvailable inserts the reservation and re-verifies inside one
// transaction that no other active reservation overlaps its rooms and
// range. This is the authoritative conflict check: availability
// answers given earlier to clients are advisory only.
func (r *MongoReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}

		// The freshly inserted document matches its own overlap
		// filter, so exclude it by id.
		filter := overlapFilter(res.RoomIDs, res.CheckIn, res.CheckOut)
		filter["id"] = bson.M{"$ne": res.ID}

		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrRoomsUnavailable
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrRoomsUnavailable {
			return err
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
