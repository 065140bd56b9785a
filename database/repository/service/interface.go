// File: database/repository/service/interface.go
package serviceRepo

import "innbook/models"

// HotelServiceRepository defines persistence operations for hotel add-on services.
type HotelServiceRepository interface {
	Create(svc *models.HotelService) error
	Update(svc *models.HotelService) error
	Delete(id string) error
	GetByID(id string) (*models.HotelService, error)
	GetAll(activeOnly bool) ([]models.HotelService, error)
}
