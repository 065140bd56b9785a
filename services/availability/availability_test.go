package availability

import (
	"context"
	"testing"

	"innbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeRoomRepo struct {
	rooms []models.Room
	err   error
}

func (f *fakeRoomRepo) Create(room *models.Room) error { return nil }
func (f *fakeRoomRepo) Update(room *models.Room) error { return nil }
func (f *fakeRoomRepo) Delete(id string) error         { return nil }
func (f *fakeRoomRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Room, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return &room, nil
		}
	}
	return nil, nil
}
func (f *fakeRoomRepo) GetByRoomNumber(roomNumber string) (*models.Room, error) { return nil, nil }
func (f *fakeRoomRepo) GetAll() ([]models.Room, error)                          { return f.rooms, f.err }
func (f *fakeRoomRepo) GetByIDs(ids []string) ([]models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Room
	for _, id := range ids {
		for _, room := range f.rooms {
			if room.ID == id {
				out = append(out, room)
			}
		}
	}
	return out, nil
}
func (f *fakeRoomRepo) CountByStatus(status string) (int64, error) { return 0, nil }

type fakeReservationRepo struct {
	booked      []string
	overlapping []models.Reservation
	err         error
}

func (f *fakeReservationRepo) Create(res *models.Reservation) error      { return nil }
func (f *fakeReservationRepo) Update(res *models.Reservation) error      { return nil }
func (f *fakeReservationRepo) UpdateStatus(id, status string) error      { return nil }
func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) { return nil, nil }
func (f *fakeReservationRepo) GetByGuest(guestID string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetAll() ([]models.Reservation, error) { return nil, nil }
func (f *fakeReservationRepo) FindOverlapping(roomIDs []string, checkIn, checkOut string) ([]models.Reservation, error) {
	return f.overlapping, f.err
}
func (f *fakeReservationRepo) BookedRoomIDs(checkIn, checkOut string) ([]string, error) {
	return f.booked, f.err
}
func (f *fakeReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) error {
	return nil
}
func (f *fakeReservationRepo) CountByStatus(status string) (int64, error)       { return 0, nil }
func (f *fakeReservationRepo) CountByDateField(field, date string) (int64, error) { return 0, nil }
func (f *fakeReservationRepo) SumRevenueSince(from string) (float64, error)     { return 0, nil }

func roomFixtures() []models.Room {
	return []models.Room{
		{ID: "room-1", RoomNumber: "101", PricePerNight: 100, Capacity: 2, Status: models.RoomStatusAvailable},
		{ID: "room-2", RoomNumber: "102", PricePerNight: 150, Capacity: 3, Status: models.RoomStatusAvailable},
		{ID: "room-3", RoomNumber: "103", PricePerNight: 90, Capacity: 2, Status: models.RoomStatusMaintenance},
	}
}

func TestFindAvailableRoomsExcludesBookedAndMaintenance(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo:        &fakeRoomRepo{rooms: roomFixtures()},
		ReservationRepo: &fakeReservationRepo{booked: []string{"room-2"}},
	}

	rooms, err := svc.FindAvailableRooms("2025-03-10", "2025-03-14")

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "room-1", rooms[0].ID)
}

func TestFindAvailableRoomsRejectsBadRange(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo:        &fakeRoomRepo{rooms: roomFixtures()},
		ReservationRepo: &fakeReservationRepo{},
	}

	_, err := svc.FindAvailableRooms("2025-03-14", "2025-03-10")
	assert.ErrorIs(t, err, models.ErrEndNotAfter)

	_, err = svc.FindAvailableRooms("2025-03-10", "2025-03-11")
	assert.ErrorIs(t, err, models.ErrTooFewNights)
}

func TestCheckRoomsPartialOverlap(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo: &fakeRoomRepo{rooms: roomFixtures()},
		ReservationRepo: &fakeReservationRepo{
			overlapping: []models.Reservation{{ID: "res-1", RoomIDs: []string{"room-2"}}},
		},
	}

	result, err := svc.CheckRooms([]string{"room-1", "room-2"}, "2025-03-10", "2025-03-14")

	require.NoError(t, err)
	assert.False(t, result.AllAvailable)
	require.Len(t, result.Rooms, 2)
	assert.True(t, result.Rooms[0].Available)
	assert.False(t, result.Rooms[1].Available)
}

func TestCheckRoomsAllFree(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo:        &fakeRoomRepo{rooms: roomFixtures()},
		ReservationRepo: &fakeReservationRepo{},
	}

	result, err := svc.CheckRooms([]string{"room-1", "room-2"}, "2025-03-10", "2025-03-14")

	require.NoError(t, err)
	assert.True(t, result.AllAvailable)
}

func TestCheckRoomsUnknownAndMaintenanceAreUnavailable(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo:        &fakeRoomRepo{rooms: roomFixtures()},
		ReservationRepo: &fakeReservationRepo{},
	}

	result, err := svc.CheckRooms([]string{"room-3", "room-missing"}, "2025-03-10", "2025-03-14")

	require.NoError(t, err)
	assert.False(t, result.AllAvailable)
	for _, r := range result.Rooms {
		assert.False(t, r.Available)
	}
}

func TestQuoteTotal(t *testing.T) {
	svc := &DefaultAvailabilityService{
		RoomRepo: &fakeRoomRepo{rooms: roomFixtures()},
	}
	rng, err := models.ParseDateRange("2025-03-10", "2025-03-14")
	require.NoError(t, err)

	total, err := svc.QuoteTotal([]string{"room-1", "room-2"}, rng)
	require.NoError(t, err)
	assert.Equal(t, 4*(100.0+150.0), total)

	_, err = svc.QuoteTotal([]string{"room-1", "room-missing"}, rng)
	assert.Error(t, err)
}
