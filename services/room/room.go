package room

import (
	"fmt"

	roomRepo "innbook/database/repository/room"
	"innbook/models"

	"github.com/google/uuid"
)

// RoomService manages the room inventory for the staff console.
type RoomService interface {
	Create(room models.Room) (*models.Room, error)
	Update(room models.Room) (*models.Room, error)
	Delete(id string) error
	GetByID(id string) (*models.Room, error)
	GetAll() ([]models.Room, error)
	SetImageURL(id, url string) (*models.Room, error)
}

// DefaultRoomService implements RoomService.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func (s *DefaultRoomService) Create(room models.Room) (*models.Room, error) {
	if room.RoomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}
	if room.PricePerNight <= 0 {
		return nil, fmt.Errorf("price per night must be positive")
	}
	if room.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}

	existing, err := s.Repo.GetByRoomNumber(room.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("room number %s already exists", room.RoomNumber)
	}

	room.ID = uuid.New().String()
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := s.Repo.Create(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *DefaultRoomService) Update(room models.Room) (*models.Room, error) {
	if room.ID == "" {
		return nil, fmt.Errorf("room id is required")
	}
	if err := s.Repo.Update(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *DefaultRoomService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultRoomService) GetByID(id string) (*models.Room, error) {
	return s.Repo.GetByIDWithProjection(id, nil)
}

func (s *DefaultRoomService) GetAll() ([]models.Room, error) {
	return s.Repo.GetAll()
}

// SetImageURL attaches an uploaded image to a room.
func (s *DefaultRoomService) SetImageURL(id, url string) (*models.Room, error) {
	room, err := s.Repo.GetByIDWithProjection(id, nil)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("room with id %s not found", id)
	}
	room.ImageURL = url
	if err := s.Repo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}
