package bookingflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"innbook/models"
)

// BookingAPI is the backend surface the booking flow consumes. The
// HTTP client below is the production implementation; tests substitute
// fakes.
type BookingAPI interface {
	CheckAvailability(ctx context.Context, roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error)
	AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]models.RoomProjection, error)
	AllRooms(ctx context.Context) ([]models.RoomProjection, error)
	CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
}

// DefaultRequestTimeout bounds every backend call made by the flow.
const DefaultRequestTimeout = 10 * time.Second

// Client is an HTTP implementation of BookingAPI.
type Client struct {
	baseURL   string
	http      *http.Client
	authToken string
}

// NewClient creates a client for the given API base URL (e.g.
// "https://api.example.com/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// SetAuthToken attaches the session credential sent on authenticated calls.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
			Details string `json:"details"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &ServerError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response payload"}
		}
	}
	return nil
}

// CheckAvailability asks whether specific rooms are free for the range.
func (c *Client) CheckAvailability(ctx context.Context, roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error) {
	req := models.CheckAvailabilityRequest{
		RoomIDs:  roomIDs,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	var result models.AvailabilityResult
	if err := c.do(ctx, http.MethodPost, "/rooms/check-availability", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AvailableRooms lists rooms free for the range.
func (c *Client) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]models.RoomProjection, error) {
	q := url.Values{}
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)

	var rooms []models.RoomProjection
	if err := c.do(ctx, http.MethodGet, "/rooms/available?"+q.Encode(), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// AllRooms lists every room regardless of availability.
func (c *Client) AllRooms(ctx context.Context) ([]models.RoomProjection, error) {
	var rooms []models.RoomProjection
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateReservation submits a reservation draft. The backend assigns
// the reservation id and owns the record from then on.
func (c *Client) CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	var res models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", draft, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
