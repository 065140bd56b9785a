package availability

import (
	"fmt"

	reservationRepo "innbook/database/repository/reservation"
	roomRepo "innbook/database/repository/room"
	"innbook/models"
	"innbook/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	RoomRepo        roomRepo.RoomRepository
	ReservationRepo reservationRepo.ReservationRepository
}

// FindAvailableRooms returns projections of every bookable room with
// no active reservation overlapping [checkIn, checkOut). Rooms under
// maintenance are excluded regardless of reservations.
func (s *DefaultAvailabilityService) FindAvailableRooms(checkIn, checkOut string) ([]models.RoomProjection, error) {
	rng, err := models.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booked, err := s.ReservationRepo.BookedRoomIDs(rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booked rooms: %w", err)
	}
	bookedSet := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		bookedSet[id] = struct{}{}
	}

	rooms, err := s.RoomRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	var out []models.RoomProjection
	for _, room := range rooms {
		if room.Status == models.RoomStatusMaintenance {
			continue
		}
		if _, taken := bookedSet[room.ID]; taken {
			continue
		}
		out = append(out, room.ToProjection())
	}
	return out, nil
}

// CheckRooms reports per-room availability for the given rooms and
// range. AllAvailable is true only when every requested room is free.
func (s *DefaultAvailabilityService) CheckRooms(roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error) {
	if len(roomIDs) == 0 {
		return nil, fmt.Errorf("no rooms requested")
	}
	rng, err := models.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.RoomRepo.GetByIDs(roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	roomsByID := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}

	overlapping, err := s.ReservationRepo.FindOverlapping(roomIDs, rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	taken := make(map[string]struct{})
	for _, res := range overlapping {
		for _, id := range res.RoomIDs {
			taken[id] = struct{}{}
		}
	}

	result := &models.AvailabilityResult{AllAvailable: true}
	for _, id := range roomIDs {
		room, known := roomsByID[id]
		_, overlapped := taken[id]
		free := known && !overlapped && room.Status != models.RoomStatusMaintenance
		if !known {
			utils.GetLogger().Warn("availability check for unknown room", zap.String("roomID", id))
		}
		if !free {
			result.AllAvailable = false
		}
		result.Rooms = append(result.Rooms, models.RoomAvailability{
			RoomID:    id,
			Available: free,
			Room:      room.ToProjection(),
		})
	}
	return result, nil
}

// QuoteTotal computes nights × pricePerNight summed over the rooms.
func (s *DefaultAvailabilityService) QuoteTotal(roomIDs []string, rng models.DateRange) (float64, error) {
	rooms, err := s.RoomRepo.GetByIDs(roomIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rooms for quote: %w", err)
	}
	if len(rooms) != len(roomIDs) {
		return 0, fmt.Errorf("unknown room in quote request")
	}

	nights := float64(rng.Nights())
	total := 0.0
	for _, room := range rooms {
		total += nights * room.PricePerNight
	}
	return total, nil
}
