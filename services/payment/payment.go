package payment

import (
	"fmt"

	"innbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CheckoutService creates payment intents for the checkout step that
// follows a successful reservation submit.
type CheckoutService interface {
	CreateCheckoutIntent(res *models.Reservation) (*CheckoutIntent, error)
}

// CheckoutIntent is what the checkout page needs to collect payment.
type CheckoutIntent struct {
	ReservationID string  `json:"reservationId"`
	ClientSecret  string  `json:"clientSecret"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// StripeCheckoutService implements CheckoutService with Stripe
// PaymentIntents.
type StripeCheckoutService struct {
	Logger *zap.Logger
}

func NewStripeCheckoutService(logger *zap.Logger) *StripeCheckoutService {
	return &StripeCheckoutService{Logger: logger}
}

// CreateCheckoutIntent creates a PaymentIntent for the reservation
// total. Only PENDING reservations are payable; anything else already
// left the checkout flow.
func (s *StripeCheckoutService) CreateCheckoutIntent(res *models.Reservation) (*CheckoutIntent, error) {
	if res.Status != models.ReservationStatusPending {
		return nil, fmt.Errorf("reservation %s is not awaiting payment (status %s)", res.ID, res.Status)
	}

	amountCents := int64(res.TotalPrice * 100)
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("reservation_id", res.ID)
	params.AddMetadata("guest_id", res.GuestID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("checkout intent created",
		zap.String("reservationID", res.ID),
		zap.Int64("amountCents", amountCents))

	return &CheckoutIntent{
		ReservationID: res.ID,
		ClientSecret:  intent.ClientSecret,
		Amount:        res.TotalPrice,
		Currency:      string(stripe.CurrencyUSD),
	}, nil
}
