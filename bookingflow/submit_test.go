package bookingflow

import (
	"context"
	"testing"

	"innbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records every backend call in order and returns canned
// responses. Shared by the flow tests in this package.
type fakeAPI struct {
	calls []string

	availabilityResult  *models.AvailabilityResult
	availabilityErr     error
	onCheckAvailability func()

	availableRooms    []models.RoomProjection
	availableRoomsErr error
	onAvailableRooms  func()

	allRooms    []models.RoomProjection
	allRoomsErr error

	created   *models.Reservation
	createErr error
	lastDraft models.ReservationDraft
}

func (f *fakeAPI) CheckAvailability(ctx context.Context, roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error) {
	f.calls = append(f.calls, "CheckAvailability")
	if f.onCheckAvailability != nil {
		f.onCheckAvailability()
	}
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.availabilityResult, nil
}

func (f *fakeAPI) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]models.RoomProjection, error) {
	f.calls = append(f.calls, "AvailableRooms")
	if f.onAvailableRooms != nil {
		f.onAvailableRooms()
	}
	if f.availableRoomsErr != nil {
		return nil, f.availableRoomsErr
	}
	return f.availableRooms, nil
}

func (f *fakeAPI) AllRooms(ctx context.Context) ([]models.RoomProjection, error) {
	f.calls = append(f.calls, "AllRooms")
	if f.allRoomsErr != nil {
		return nil, f.allRoomsErr
	}
	return f.allRooms, nil
}

func (f *fakeAPI) CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	f.calls = append(f.calls, "CreateReservation")
	f.lastDraft = draft
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &models.Reservation{
		ID:              "res-1",
		GuestID:         draft.GuestID,
		RoomIDs:         draft.RoomIDs,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		NumberOfGuests:  draft.NumberOfGuests,
		SpecialRequests: draft.SpecialRequests,
		Status:          models.ReservationStatusPending,
	}, nil
}

func allFree(rooms ...models.RoomProjection) *models.AvailabilityResult {
	result := &models.AvailabilityResult{AllAvailable: true}
	for _, r := range rooms {
		result.Rooms = append(result.Rooms, models.RoomAvailability{RoomID: r.ID, Available: true, Room: r})
	}
	return result
}

func testRange(t *testing.T) models.DateRange {
	t.Helper()
	rng, err := models.NewDateRange(date("2025-03-10"), date("2025-03-14"))
	require.NoError(t, err)
	return rng
}

func validRequest(t *testing.T) SubmitRequest {
	return SubmitRequest{
		Range:          testRange(t),
		RoomID:         "room-1",
		NumberOfGuests: 2,
	}
}

var guestAuth = AuthSession{Authenticated: true, GuestID: "guest-1", Token: "tok"}

func TestSubmitRequiresLogin(t *testing.T) {
	api := &fakeAPI{}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	outcome := submitter.Submit(context.Background(), AuthSession{}, validRequest(t))

	assert.Equal(t, StateRequiresLogin, outcome.State)
	assert.Empty(t, api.calls, "an unauthenticated attempt must never reach the backend")
}

func TestSubmitFieldValidation(t *testing.T) {
	api := &fakeAPI{}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	outcome := submitter.Submit(context.Background(), guestAuth, SubmitRequest{})

	assert.Equal(t, StateInvalid, outcome.State)
	assert.Len(t, outcome.FieldErrors, 3)
	assert.Empty(t, api.calls)
}

func TestSubmitConflict(t *testing.T) {
	api := &fakeAPI{
		availabilityResult: &models.AvailabilityResult{AllAvailable: false},
	}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	outcome := submitter.Submit(context.Background(), guestAuth, validRequest(t))

	assert.Equal(t, StateConflict, outcome.State)
	assert.Equal(t, []string{"CheckAvailability"}, api.calls, "a conflict must stop the sequence before create")
}

func TestSubmitSuccess(t *testing.T) {
	room := models.RoomProjection{ID: "room-1", PricePerNight: 120}
	api := &fakeAPI{availabilityResult: allFree(room)}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	req := validRequest(t)
	req.SpecialRequests = "late arrival"
	outcome := submitter.Submit(context.Background(), guestAuth, req)

	require.Equal(t, StateSubmitted, outcome.State)
	require.NotNil(t, outcome.Reservation)
	assert.NotEmpty(t, outcome.Reservation.ID)
	assert.Equal(t, models.ReservationStatusPending, outcome.Reservation.Status)

	// The re-check runs once, immediately before create.
	assert.Equal(t, []string{"CheckAvailability", "CreateReservation"}, api.calls)
	assert.Equal(t, "guest-1", api.lastDraft.GuestID)
	assert.Equal(t, []string{"room-1"}, api.lastDraft.RoomIDs)
	assert.Equal(t, "2025-03-10", api.lastDraft.CheckIn)
	assert.Equal(t, "2025-03-14", api.lastDraft.CheckOut)
	assert.Equal(t, "late arrival", api.lastDraft.SpecialRequests)
}

func TestSubmitSurfacesServerMessage(t *testing.T) {
	room := models.RoomProjection{ID: "room-1"}
	api := &fakeAPI{
		availabilityResult: allFree(room),
		createErr:          &ServerError{StatusCode: 500, Message: "reservation store unavailable"},
	}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	outcome := submitter.Submit(context.Background(), guestAuth, validRequest(t))

	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "reservation store unavailable", outcome.Message)
}

func TestSubmitNetworkErrorGenericMessage(t *testing.T) {
	api := &fakeAPI{
		availabilityErr: &NetworkError{Err: context.DeadlineExceeded},
	}
	submitter := NewBookingSubmitter(api, NewAvailabilityChecker(api))

	outcome := submitter.Submit(context.Background(), guestAuth, validRequest(t))

	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "connection problem, please check your network and try again", outcome.Message)
	assert.Equal(t, []string{"CheckAvailability"}, api.calls)
}
