package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"innbook/config"
	"innbook/database"
	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelServiceRepo implements HotelServiceRepository using MongoDB.
type MongoHotelServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelServiceRepo creates a new instance of HotelServiceRepository using MongoDB.
func NewMongoHotelServiceRepo() HotelServiceRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("services")
	repo := &MongoHotelServiceRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new hotel service document.
func (r *MongoHotelServiceRepo) Create(svc *models.HotelService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create hotel service: %w", err)
	}
	return nil
}

// Update modifies an existing hotel service document.
func (r *MongoHotelServiceRepo) Update(svc *models.HotelService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update hotel service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("hotel service with id %s not found", svc.ID)
	}
	return nil
}

// Delete removes a hotel service document by its ID.
func (r *MongoHotelServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete hotel service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("hotel service with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a hotel service by its unique ID.
func (r *MongoHotelServiceRepo) GetByID(id string) (*models.HotelService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.HotelService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetAll retrieves hotel services, optionally only active ones.
func (r *MongoHotelServiceRepo) GetAll(activeOnly bool) ([]models.HotelService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list hotel services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.HotelService
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode hotel services: %w", err)
	}
	return out, nil
}
