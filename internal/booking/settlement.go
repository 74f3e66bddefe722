package booking

import (
	"context"
	"fmt"
	"time"

	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/wallet"

	"github.com/rs/zerolog"
)

// PaymentError reports a settlement where the booking was created but the
// payment capture failed. It is classified apart from an outright booking
// failure: the booking is held server-side and the user must contact support
// rather than retry, since a naive retry would create a second booking.
type PaymentError struct {
	BookingID string
	Err       error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("booking %s created but payment failed: %v", e.BookingID, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }

func (e *PaymentError) Is(target error) bool { return target == model.ErrPaymentFailed }

// Coordinator runs the settlement: create the pending booking, capture
// payment against it, then re-read the authoritative balance. It issues the
// capture at most once per created booking and never retries it.
type Coordinator struct {
	api    rentalapi.API
	wallet *wallet.Store
	logger zerolog.Logger
}

func NewCoordinator(api rentalapi.API, walletStore *wallet.Store, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		api:    api,
		wallet: walletStore,
		logger: logger,
	}
}

func (c *Coordinator) Settle(ctx context.Context, userID string, draft *model.BookingDraft) (*model.Booking, error) {
	booking, err := c.api.CreateBooking(ctx, userID, draft)
	if err != nil {
		// Nothing was created; no compensating action applies.
		return nil, err
	}

	balanceHint, err := c.api.CapturePayment(ctx, booking.ID, userID)
	if err != nil {
		c.logger.Error().Err(err).
			Str("booking_id", booking.ID).
			Str("user_id", userID).
			Msg("payment capture failed, marking booking failed")
		c.compensate(ctx, booking.ID)
		return nil, &PaymentError{BookingID: booking.ID, Err: err}
	}

	// The capture response balance is only a hint; the store applies the
	// authoritative value from a full refresh so no locally guessed amount
	// is ever displayed.
	balance, err := c.wallet.Refresh(ctx, userID)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("user_id", userID).
			Msg("post-payment balance refresh failed, next read will re-sync")
	} else if !balance.Equal(balanceHint) {
		c.logger.Debug().
			Str("hint", balanceHint.String()).
			Str("authoritative", balance.String()).
			Msg("payment response balance superseded by refresh")
	}

	c.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", userID).
		Str("total_price", booking.TotalPrice.StringFixed(2)).
		Msg("settlement completed")

	booking.Status = model.StatusConfirmed
	return booking, nil
}

// compensate marks the booking failed, best effort. Its own failure is
// logged and never surfaced: the user must see the payment failure, not a
// secondary error about the compensation.
func (c *Coordinator) compensate(ctx context.Context, bookingID string) {
	compCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := c.api.UpdateBookingStatus(compCtx, bookingID, model.StatusFailed); err != nil {
		c.logger.Error().Err(err).
			Str("booking_id", bookingID).
			Msg("compensating status update failed")
	}
}
