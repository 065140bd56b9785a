package bookingflow

import (
	"context"
	"testing"
	"time"

	"innbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow(api BookingAPI, auth AuthSession) *BookingFlowController {
	c := NewBookingFlowController(api, auth)
	c.Selector().Now = func() time.Time { return date("2025-03-01") }
	return c
}

func TestFlowHappyPath(t *testing.T) {
	room := models.RoomProjection{ID: "room-1", RoomNumber: "101", PricePerNight: 150}
	api := &fakeAPI{
		availableRooms:     []models.RoomProjection{room, {ID: "room-2", PricePerNight: 90}},
		availabilityResult: allFree(room),
	}
	flow := newTestFlow(api, guestAuth)
	ctx := context.Background()

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-10")))
	require.NoError(t, flow.OnEndDateSelected(ctx, date("2025-03-14")))

	rooms, degraded := flow.Rooms()
	assert.Len(t, rooms, 2)
	assert.False(t, degraded)
	assert.Equal(t, []string{"AvailableRooms"}, api.calls, "committing the range triggers exactly one room query")

	require.NoError(t, flow.OnRoomSelected("room-1"))
	flow.SetNumberOfGuests(2)

	total, ok := flow.Quote()
	require.True(t, ok)
	assert.Equal(t, 4*150.0, total)

	outcome := flow.Submit(ctx)
	require.Equal(t, StateSubmitted, outcome.State)

	id, ok := flow.CheckoutReservationID()
	require.True(t, ok)
	assert.Equal(t, outcome.Reservation.ID, id)
	assert.Equal(t, []string{"AvailableRooms", "CheckAvailability", "CreateReservation"}, api.calls)
}

func TestFlowRejectsRoomOutsideOfferedList(t *testing.T) {
	api := &fakeAPI{availableRooms: []models.RoomProjection{{ID: "room-1"}}}
	flow := newTestFlow(api, guestAuth)
	ctx := context.Background()

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-10")))
	require.NoError(t, flow.OnEndDateSelected(ctx, date("2025-03-14")))

	assert.Error(t, flow.OnRoomSelected("room-99"))
	assert.NoError(t, flow.OnRoomSelected("room-1"))
}

func TestFlowNewStartInvalidatesRooms(t *testing.T) {
	api := &fakeAPI{availableRooms: []models.RoomProjection{{ID: "room-1"}}}
	flow := newTestFlow(api, guestAuth)
	ctx := context.Background()

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-10")))
	require.NoError(t, flow.OnEndDateSelected(ctx, date("2025-03-14")))
	rooms, _ := flow.Rooms()
	require.Len(t, rooms, 1)

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-20")))
	rooms, _ = flow.Rooms()
	assert.Empty(t, rooms, "rooms fetched for an abandoned range must not survive a new start date")
}

func TestFlowConflictRefreshesRooms(t *testing.T) {
	api := &fakeAPI{
		availableRooms:     []models.RoomProjection{{ID: "room-1"}},
		availabilityResult: &models.AvailabilityResult{AllAvailable: false},
	}
	flow := newTestFlow(api, guestAuth)
	ctx := context.Background()

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-10")))
	require.NoError(t, flow.OnEndDateSelected(ctx, date("2025-03-14")))
	require.NoError(t, flow.OnRoomSelected("room-1"))

	outcome := flow.Submit(ctx)

	assert.Equal(t, StateConflict, outcome.State)
	assert.Equal(t, []string{"AvailableRooms", "CheckAvailability", "AvailableRooms"}, api.calls,
		"a conflict re-fetches the room list so the UI reflects the new reality")
	_, ok := flow.CheckoutReservationID()
	assert.False(t, ok)
}

func TestFlowDegradedListStillSelectable(t *testing.T) {
	api := &fakeAPI{
		availableRoomsErr: &ServerError{StatusCode: 500},
		allRooms:          []models.RoomProjection{{ID: "room-1"}, {ID: "room-2"}},
	}
	flow := newTestFlow(api, guestAuth)
	ctx := context.Background()

	require.NoError(t, flow.OnStartDateSelected(date("2025-03-10")))
	require.NoError(t, flow.OnEndDateSelected(ctx, date("2025-03-14")))

	rooms, degraded := flow.Rooms()
	assert.True(t, degraded)
	assert.Len(t, rooms, 2)
	assert.NoError(t, flow.OnRoomSelected("room-2"))
}
