// File: database/repository/guest/interface.go
package guestRepo

import (
	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GuestRepository defines persistence operations for guest accounts.
type GuestRepository interface {
	Create(guest *models.Guest) error
	Update(guest *models.Guest) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.Guest, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.Guest, error)
	GetAll() ([]models.Guest, error)
	SetTokenHash(id, tokenHash string) error
}
