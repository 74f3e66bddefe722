package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

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

func newTestService(t *testing.T, api *mockapi.API) *Service {
	t.Helper()
	cache := mockwallet.NewBalanceCache(t)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	store := wallet.NewStore(api, cache, zerolog.Nop())
	return NewService(api, store, zerolog.Nop())
}

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id string, status model.BookingStatus) model.Booking {
	return model.Booking{
		ID:        id,
		CarID:     "car-1",
		UserID:    "user-1",
		StartDate: day("2024-06-16"),
		EndDate:   day("2024-06-19"),
		Status:    status,
	}
}

func TestService_ListBookings_DerivesViewFields(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{
		booking("bk-1", model.StatusCompleted),
		booking("bk-2", model.StatusConfirmed),
		booking("bk-3", model.StatusCompleted),
	}, nil)
	api.On("ReviewExists", ctx, "bk-1").Return(true, nil)
	// Lookup failure must not fail the list; the booking shows no review.
	api.On("ReviewExists", ctx, "bk-3").Return(false, errors.New("reviews unavailable"))

	views, err := svc.ListBookings(ctx, "user-1", "")

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, 3, views[0].DurationDays)
	assert.True(t, views[0].HasReview)
	assert.False(t, views[1].HasReview)
	assert.False(t, views[2].HasReview)
	// Review existence is only looked up for completed bookings.
	api.AssertNotCalled(t, "ReviewExists", mock.Anything, "bk-2")
}

func TestService_ListBookings_StatusFilter(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{
		booking("bk-1", model.StatusConfirmed),
		booking("bk-2", model.StatusCancelled),
	}, nil).Times(3)

	all, err := svc.ListBookings(ctx, "user-1", "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cancelled, err := svc.ListBookings(ctx, "user-1", "cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "bk-2", cancelled[0].ID)

	completed, err := svc.ListBookings(ctx, "user-1", "completed")
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestService_Cancel_NotFound(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{booking("bk-1", model.StatusConfirmed)}, nil)

	_, err := svc.Cancel(ctx, "user-1", "bk-404")

	assert.ErrorIs(t, err, model.ErrBookingNotFound)
	api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
}

func TestService_Cancel_StatusNeverRegresses(t *testing.T) {
	ctx := context.Background()

	for _, status := range []model.BookingStatus{model.StatusCompleted, model.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			api := mockapi.NewAPI(t)
			svc := newTestService(t, api)
			api.On("ListBookings", ctx, "user-1").Return([]model.Booking{booking("bk-1", status)}, nil)

			_, err := svc.Cancel(ctx, "user-1", "bk-1")

			assert.ErrorIs(t, err, model.ErrBookingNotCancellable)
			api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Cancel_Success(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{booking("bk-1", model.StatusConfirmed)}, nil)
	api.On("CancelBooking", ctx, "bk-1").Return(nil)
	// The server refunded; the refresh picks up the new balance.
	api.On("GetWallet", ctx, "user-1").Return(&model.WalletSnapshot{Balance: decimal.NewFromInt(150)}, nil)

	cancelled, err := svc.Cancel(ctx, "user-1", "bk-1")

	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
}

func TestService_Cancel_RemoteFailureLeavesStatus(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{booking("bk-1", model.StatusPending)}, nil)
	api.On("CancelBooking", ctx, "bk-1").Return(errors.New("server error"))

	_, err := svc.Cancel(ctx, "user-1", "bk-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrBookingNotCancellable)
	api.AssertNotCalled(t, "GetWallet", mock.Anything, mock.Anything)
}

func TestService_Cancel_RefreshFailureStillCancels(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ListBookings", ctx, "user-1").Return([]model.Booking{booking("bk-1", model.StatusConfirmed)}, nil)
	api.On("CancelBooking", ctx, "bk-1").Return(nil)
	api.On("GetWallet", ctx, "user-1").Return(nil, errors.New("timeout"))

	cancelled, err := svc.Cancel(ctx, "user-1", "bk-1")

	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
}

func TestService_SubmitReview_InvalidNeverSent(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	assert.ErrorIs(t, svc.SubmitReview(ctx, "bk-1", 0, "a perfectly fine comment"), model.ErrInvalidRating)
	assert.ErrorIs(t, svc.SubmitReview(ctx, "bk-1", 6, "a perfectly fine comment"), model.ErrInvalidRating)
	assert.ErrorIs(t, svc.SubmitReview(ctx, "bk-1", 4, "too short"), model.ErrInvalidComment)

	api.AssertNotCalled(t, "ReviewExists", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestService_SubmitReview_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ReviewExists", ctx, "bk-1").Return(true, nil)

	err := svc.SubmitReview(ctx, "bk-1", 5, "smooth pickup and a clean car")

	assert.ErrorIs(t, err, model.ErrReviewExists)
	api.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestService_SubmitReview_Success(t *testing.T) {
	ctx := context.Background()
	api := mockapi.NewAPI(t)
	svc := newTestService(t, api)

	api.On("ReviewExists", ctx, "bk-1").Return(false, nil)
	api.On("CreateReview", ctx, &model.Review{
		BookingID: "bk-1",
		Rating:    5,
		Comment:   "smooth pickup and a clean car",
	}).Return(nil)

	require.NoError(t, svc.SubmitReview(ctx, "bk-1", 5, "smooth pickup and a clean car"))
}
