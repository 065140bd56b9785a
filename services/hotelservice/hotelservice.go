package hotelservice

import (
	"fmt"

	serviceRepo "innbook/database/repository/service"
	"innbook/models"

	"github.com/google/uuid"
)

// HotelServiceCatalog manages add-on services offered to guests.
type HotelServiceCatalog interface {
	Create(svc models.HotelService) (*models.HotelService, error)
	Update(svc models.HotelService) (*models.HotelService, error)
	Delete(id string) error
	GetByID(id string) (*models.HotelService, error)
	GetAll(activeOnly bool) ([]models.HotelService, error)
}

// DefaultHotelServiceCatalog implements HotelServiceCatalog.
type DefaultHotelServiceCatalog struct {
	Repo serviceRepo.HotelServiceRepository
}

func (s *DefaultHotelServiceCatalog) Create(svc models.HotelService) (*models.HotelService, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}
	svc.ID = uuid.New().String()
	svc.Active = true
	if err := s.Repo.Create(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultHotelServiceCatalog) Update(svc models.HotelService) (*models.HotelService, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	if err := s.Repo.Update(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultHotelServiceCatalog) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultHotelServiceCatalog) GetByID(id string) (*models.HotelService, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultHotelServiceCatalog) GetAll(activeOnly bool) ([]models.HotelService, error) {
	return s.Repo.GetAll(activeOnly)
}
