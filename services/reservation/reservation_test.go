package reservation

import (
	"context"
	"errors"
	"testing"

	reservationRepo "innbook/database/repository/reservation"
	"innbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeReservationRepo struct {
	byID     map[string]*models.Reservation
	conflict bool
	created  *models.Reservation
	statuses map[string]string
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:     make(map[string]*models.Reservation),
		statuses: make(map[string]string),
	}
}

func (f *fakeReservationRepo) Create(res *models.Reservation) error { return nil }
func (f *fakeReservationRepo) Update(res *models.Reservation) error { return nil }
func (f *fakeReservationRepo) UpdateStatus(id, status string) error {
	f.statuses[id] = status
	if res, ok := f.byID[id]; ok {
		res.Status = status
	}
	return nil
}
func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	return f.byID[id], nil
}
func (f *fakeReservationRepo) GetByGuest(guestID string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetAll() ([]models.Reservation, error) { return nil, nil }
func (f *fakeReservationRepo) FindOverlapping(roomIDs []string, checkIn, checkOut string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) BookedRoomIDs(checkIn, checkOut string) ([]string, error) {
	return nil, nil
}
func (f *fakeReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) error {
	if f.conflict {
		return reservationRepo.ErrRoomsUnavailable
	}
	f.created = res
	f.byID[res.ID] = res
	return nil
}
func (f *fakeReservationRepo) CountByStatus(status string) (int64, error)         { return 0, nil }
func (f *fakeReservationRepo) CountByDateField(field, date string) (int64, error) { return 0, nil }
func (f *fakeReservationRepo) SumRevenueSince(from string) (float64, error)       { return 0, nil }

type fakeRoomRepo struct {
	rooms []models.Room
}

func (f *fakeRoomRepo) Create(room *models.Room) error { return nil }
func (f *fakeRoomRepo) Update(room *models.Room) error { return nil }
func (f *fakeRoomRepo) Delete(id string) error         { return nil }
func (f *fakeRoomRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Room, error) {
	return nil, nil
}
func (f *fakeRoomRepo) GetByRoomNumber(roomNumber string) (*models.Room, error) { return nil, nil }
func (f *fakeRoomRepo) GetAll() ([]models.Room, error)                          { return f.rooms, nil }
func (f *fakeRoomRepo) GetByIDs(ids []string) ([]models.Room, error) {
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

type fakeAvailability struct {
	total float64
	err   error
}

func (f *fakeAvailability) FindAvailableRooms(checkIn, checkOut string) ([]models.RoomProjection, error) {
	return nil, nil
}
func (f *fakeAvailability) CheckRooms(roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error) {
	return nil, nil
}
func (f *fakeAvailability) QuoteTotal(roomIDs []string, rng models.DateRange) (float64, error) {
	return f.total, f.err
}

type fakeHolds struct {
	scheduled []string
	err       error
}

func (f *fakeHolds) ScheduleExpiry(reservationID string) error {
	f.scheduled = append(f.scheduled, reservationID)
	return f.err
}

func validDraft() models.ReservationDraft {
	return models.ReservationDraft{
		GuestID:        "guest-1",
		RoomIDs:        []string{"room-1"},
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-14",
		NumberOfGuests: 2,
	}
}

func newService(repo *fakeReservationRepo, holds HoldScheduler) *DefaultReservationService {
	return &DefaultReservationService{
		Repo: repo,
		RoomRepo: &fakeRoomRepo{rooms: []models.Room{
			{ID: "room-1", PricePerNight: 120, Capacity: 2, Status: models.RoomStatusAvailable},
		}},
		Availability: &fakeAvailability{total: 480},
		Holds:        holds,
	}
}

func TestCreateAssignsIdentityAndSchedulesHold(t *testing.T) {
	repo := newFakeReservationRepo()
	holds := &fakeHolds{}
	svc := newService(repo, holds)

	res, err := svc.Create(context.Background(), validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, models.ReservationStatusPending, res.Status)
	assert.Equal(t, 480.0, res.TotalPrice)
	assert.Equal(t, []string{res.ID}, holds.scheduled)
	assert.Same(t, res, repo.created)
}

func TestCreateConflictMapsToConflictError(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.conflict = true
	svc := newService(repo, nil)

	_, err := svc.Create(context.Background(), validDraft())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "reservationConflict", conflict.Code)
}

func TestCreateValidation(t *testing.T) {
	svc := newService(newFakeReservationRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.ReservationDraft)
	}{
		{"missing guest", func(d *models.ReservationDraft) { d.GuestID = "" }},
		{"no rooms", func(d *models.ReservationDraft) { d.RoomIDs = nil }},
		{"zero guests", func(d *models.ReservationDraft) { d.NumberOfGuests = 0 }},
		{"over capacity", func(d *models.ReservationDraft) { d.NumberOfGuests = 5 }},
		{"unknown room", func(d *models.ReservationDraft) { d.RoomIDs = []string{"room-missing"} }},
		{"inverted dates", func(d *models.ReservationDraft) { d.CheckIn, d.CheckOut = d.CheckOut, d.CheckIn }},
		{"single night", func(d *models.ReservationDraft) { d.CheckOut = "2025-03-11" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := svc.Create(ctx, draft)
			assert.Error(t, err)
		})
	}
}

func TestCreateSurvivesHoldSchedulingFailure(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newService(repo, &fakeHolds{err: errors.New("queue down")})

	res, err := svc.Create(context.Background(), validDraft())

	require.NoError(t, err, "a failed hold schedule must not void the reservation")
	assert.NotNil(t, repo.created)
	assert.NotEmpty(t, res.ID)
}

func TestLifecycleTransitions(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	// Check-in straight from PENDING is illegal.
	_, err = svc.CheckIn(res.ID)
	assert.Error(t, err)

	_, err = svc.Confirm(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, repo.byID[res.ID].Status)

	// Confirm is not reentrant.
	_, err = svc.Confirm(res.ID)
	assert.Error(t, err)

	_, err = svc.CheckIn(res.ID)
	require.NoError(t, err)

	// A checked-in stay can no longer be cancelled.
	_, err = svc.Cancel(res.ID)
	assert.Error(t, err)

	_, err = svc.CheckOut(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCheckedOut, repo.byID[res.ID].Status)
}

func TestCancelFromPendingAndConfirmed(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	_, err = svc.Cancel(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, repo.byID[res.ID].Status)
}

func TestExpireIfPending(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	require.NoError(t, svc.ExpireIfPending(res.ID))
	assert.Equal(t, models.ReservationStatusCancelled, repo.byID[res.ID].Status)

	// Already-released holds and unknown ids are no-ops.
	require.NoError(t, svc.ExpireIfPending(res.ID))
	require.NoError(t, svc.ExpireIfPending("res-missing"))
}

func TestExpireLeavesConfirmedAlone(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newService(repo, nil)

	res, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)
	_, err = svc.Confirm(res.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ExpireIfPending(res.ID))
	assert.Equal(t, models.ReservationStatusConfirmed, repo.byID[res.ID].Status)
}
