package booking

import (
	"context"
	"errors"
	"testing"

	"rental-storefront/internal/model"
	"rental-storefront/internal/wallet"
	mockapi "rental-storefront/mocks/rentalapi"
	mockwallet "rental-storefront/mocks/wallet"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDraft() *model.BookingDraft {
	return &model.BookingDraft{
		CarID:           "car-1",
		PickupLocation:  "Airport",
		DropoffLocation: "Downtown",
		TotalPrice:      decimal.NewFromInt(100),
	}
}

func newTestCoordinator(t *testing.T, api *mockapi.API) (*Coordinator, *wallet.Store) {
	t.Helper()
	cache := mockwallet.NewBalanceCache(t)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	store := wallet.NewStore(api, cache, zerolog.Nop())
	return NewCoordinator(api, store, zerolog.Nop()), store
}

func TestCoordinator_Settle_HappyPath(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	coord, store := newTestCoordinator(t, api)

	draft := testDraft()
	api.On("CreateBooking", ctx, "user-1", draft).Return(&model.Booking{
		ID:         "bk-1",
		CarID:      "car-1",
		UserID:     "user-1",
		TotalPrice: decimal.NewFromInt(100),
		Status:     model.StatusPending,
	}, nil)
	api.On("CapturePayment", ctx, "bk-1", "user-1").Return(decimal.NewFromInt(400), nil)
	// The refresh reports 420; the capture hint of 400 must not be what the
	// store ends up holding.
	api.On("GetWallet", ctx, "user-1").Return(&model.WalletSnapshot{Balance: decimal.NewFromInt(420)}, nil)

	booking, err := coord.Settle(ctx, "user-1", draft)

	require.NoError(t, err)
	assert.Equal(t, "bk-1", booking.ID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, "420.00", store.Balance("user-1").StringFixed(2))
	api.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoordinator_Settle_CreateFails_NoPaymentIssued(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	coord, _ := newTestCoordinator(t, api)

	api.On("CreateBooking", ctx, "user-1", mock.Anything).Return(nil, errors.New("car not available"))

	booking, err := coord.Settle(ctx, "user-1", testDraft())

	require.Error(t, err)
	assert.Nil(t, booking)
	assert.NotErrorIs(t, err, model.ErrPaymentFailed)
	api.AssertNotCalled(t, "CapturePayment", mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoordinator_Settle_PaymentFails_CompensatesAndClassifies(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	coord, store := newTestCoordinator(t, api)

	api.On("CreateBooking", ctx, "user-1", mock.Anything).Return(&model.Booking{ID: "bk-1"}, nil)
	api.On("CapturePayment", ctx, "bk-1", "user-1").Return(decimal.Zero, errors.New("wallet service unavailable"))
	api.On("UpdateBookingStatus", mock.Anything, "bk-1", model.StatusFailed).Return(nil)

	booking, err := coord.Settle(ctx, "user-1", testDraft())

	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, model.ErrPaymentFailed)

	var paymentErr *PaymentError
	require.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, "bk-1", paymentErr.BookingID)

	// No refresh on the failure path; the balance stays untouched.
	assert.True(t, store.Balance("user-1").IsZero())
	api.AssertNotCalled(t, "GetWallet", mock.Anything, mock.Anything)
}

func TestCoordinator_Settle_CompensationFailureNotSurfaced(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	coord, _ := newTestCoordinator(t, api)

	api.On("CreateBooking", ctx, "user-1", mock.Anything).Return(&model.Booking{ID: "bk-1"}, nil)
	api.On("CapturePayment", ctx, "bk-1", "user-1").Return(decimal.Zero, errors.New("payment declined"))
	api.On("UpdateBookingStatus", mock.Anything, "bk-1", model.StatusFailed).Return(errors.New("patch rejected"))

	_, err := coord.Settle(ctx, "user-1", testDraft())

	// The user sees the payment failure, never the compensation failure.
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPaymentFailed)
	assert.NotContains(t, err.Error(), "patch rejected")
}

func TestCoordinator_Settle_RefreshFailureDoesNotFailSettlement(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	coord, _ := newTestCoordinator(t, api)

	api.On("CreateBooking", ctx, "user-1", mock.Anything).Return(&model.Booking{ID: "bk-1"}, nil)
	api.On("CapturePayment", ctx, "bk-1", "user-1").Return(decimal.NewFromInt(400), nil)
	api.On("GetWallet", ctx, "user-1").Return(nil, errors.New("timeout"))

	booking, err := coord.Settle(ctx, "user-1", testDraft())

	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
}
