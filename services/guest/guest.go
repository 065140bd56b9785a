package guest

import (
	"fmt"

	guestRepo "innbook/database/repository/guest"
	"innbook/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GuestService manages guest accounts and authentication.
type GuestService interface {
	Register(reg models.GuestRegistration) (*models.Guest, error)
	Authenticate(creds models.GuestCredentials) (*models.Guest, string, error)
	RevokeToken(id string) error
	GetByID(id string) (*models.Guest, error)
	GetAll() ([]models.Guest, error)
	Update(guest models.Guest) (*models.Guest, error)
	Delete(id string) error
}

// DefaultGuestService implements GuestService.
type DefaultGuestService struct {
	Repo guestRepo.GuestRepository
}

// Register creates a guest account with a bcrypt password hash.
func (s *DefaultGuestService) Register(reg models.GuestRegistration) (*models.Guest, error) {
	existing, err := s.Repo.GetByEmailWithProjection(reg.Email, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	guest := &models.Guest{
		ID:           uuid.New().String(),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *DefaultGuestService) GetByID(id string) (*models.Guest, error) {
	return s.Repo.GetByIDWithProjection(id, nil)
}

func (s *DefaultGuestService) GetAll() ([]models.Guest, error) {
	return s.Repo.GetAll()
}

func (s *DefaultGuestService) Update(guest models.Guest) (*models.Guest, error) {
	if guest.ID == "" {
		return nil, fmt.Errorf("guest id is required")
	}
	if err := s.Repo.Update(&guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *DefaultGuestService) Delete(id string) error {
	return s.Repo.Delete(id)
}
