// File: database/repository/room/interface.go
package roomRepo

import (
	"innbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.Room, error)
	GetByRoomNumber(roomNumber string) (*models.Room, error)
	GetAll() ([]models.Room, error)
	GetByIDs(ids []string) ([]models.Room, error)
	CountByStatus(status string) (int64, error)
}
