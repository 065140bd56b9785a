package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"innbook/config"
	"innbook/database"
	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRoomsUnavailable is returned when a transactional create finds an
// overlapping active reservation for one of the requested rooms.
var ErrRoomsUnavailable = errors.New("one or more rooms are no longer available for the requested dates")

// activeStatuses are the reservation statuses that occupy rooms.
var activeStatuses = []string{
	models.ReservationStatusPending,
	models.ReservationStatusConfirmed,
	models.ReservationStatusCheckedIn,
}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The compound index backs the overlap query used on every
// availability check and every create.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guest_id", Value: 1}}},
		{Keys: bson.D{
			{Key: "room_ids", Value: 1},
			{Key: "status", Value: 1},
			{Key: "check_in", Value: 1},
			{Key: "check_out", Value: 1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches active reservations whose [check_in, check_out)
// intersects [checkIn, checkOut) for any of the given rooms. ISO
// "YYYY-MM-DD" strings order lexicographically, so plain string
// comparison is correct here.
func overlapFilter(roomIDs []string, checkIn, checkOut string) bson.M {
	return bson.M{
		"room_ids":  bson.M{"$in": roomIDs},
		"status":    bson.M{"$in": activeStatuses},
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	}
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &res, nil
}

// GetByGuest retrieves all reservations for a guest, newest first.
func (r *MongoReservationRepo) GetByGuest(guestID string) ([]models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"guest_id": guestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for guest %s: %w", guestID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// GetAll retrieves every reservation, newest first.
func (r *MongoReservationRepo) GetAll() ([]models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// FindOverlapping returns active reservations touching any of the given
// rooms within [checkIn, checkOut).
func (r *MongoReservationRepo) FindOverlapping(roomIDs []string, checkIn, checkOut string) ([]models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, overlapFilter(roomIDs, checkIn, checkOut))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping reservations: %w", err)
	}
	return out, nil
}

// BookedRoomIDs returns the distinct room ids with an active
// reservation overlapping [checkIn, checkOut).
func (r *MongoReservationRepo) BookedRoomIDs(checkIn, checkOut string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":    bson.M{"$in": activeStatuses},
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	}
	values, err := r.coll.Distinct(ctx, "room_ids", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked room ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

// CountByStatus counts reservations in the given status.
func (r *MongoReservationRepo) CountByStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations by status %s: %w", status, err)
	}
	return count, nil
}

// CountByDateField counts active reservations whose date field (e.g.
// "check_in") equals the given "YYYY-MM-DD" date.
func (r *MongoReservationRepo) CountByDateField(field, date string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		field:    date,
		"status": bson.M{"$in": activeStatuses},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations by %s: %w", field, err)
	}
	return count, nil
}

// SumRevenueSince aggregates total_price over non-cancelled
// reservations checking in on or after the given date.
func (r *MongoReservationRepo) SumRevenueSince(from string) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"check_in": bson.M{"$gte": from},
			"status":   bson.M{"$ne": models.ReservationStatusCancelled},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_price"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
