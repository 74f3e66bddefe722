package rentalapi

import (
	"context"

	"rental-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// API is the boundary contract with the remote rental/payment service. The
// service owns availability, persistence and card processing; this interface
// only names the calls the storefront makes.
type API interface {
	// GetCar fetches a car for wizard display and as the price basis
	GetCar(ctx context.Context, carID string) (*model.Car, error)

	// CreateBooking persists a new booking with status pending
	CreateBooking(ctx context.Context, userID string, draft *model.BookingDraft) (*model.Booking, error)

	// CapturePayment settles a pending booking against the user's wallet and
	// returns the post-payment balance reported by the service
	CapturePayment(ctx context.Context, bookingID, userID string) (decimal.Decimal, error)

	// UpdateBookingStatus is the best-effort compensating call (e.g. mark failed)
	UpdateBookingStatus(ctx context.Context, bookingID string, status model.BookingStatus) error

	// CancelBooking cancels a booking; the service performs the refund
	CancelBooking(ctx context.Context, bookingID string) error

	// ListBookings returns all bookings for a user
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)

	// GetWallet returns the authoritative balance and transaction ledger
	GetWallet(ctx context.Context, userID string) (*model.WalletSnapshot, error)

	// AddFunds tops up the wallet and returns the new balance
	AddFunds(ctx context.Context, req *AddFundsRequest) (decimal.Decimal, error)

	// ReviewExists reports whether a review was already submitted for a booking
	ReviewExists(ctx context.Context, bookingID string) (bool, error)

	// CreateReview submits a review for a completed booking
	CreateReview(ctx context.Context, review *model.Review) error
}

type AddFundsRequest struct {
	UserID     string          `json:"userId"`
	Amount     decimal.Decimal `json:"amount"`
	CardNumber string          `json:"cardNumber"`
	ExpiryDate string          `json:"expiryDate"`
	CVV        string          `json:"cvv"`
}
