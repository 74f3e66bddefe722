package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rental-storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBalances struct {
	balance decimal.Decimal
}

func (s *stubBalances) Balance(userID string) decimal.Decimal { return s.balance }

type stubSettler struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{}
	booking *model.Booking
	err     error
}

func (s *stubSettler) Settle(ctx context.Context, userID string, draft *model.BookingDraft) (*model.Booking, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return s.booking, s.err
}

func (s *stubSettler) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testCar() *model.Car {
	return &model.Car{ID: "car-1", Make: "Toyota", Model: "Corolla", PricePerDay: decimal.NewFromInt(50)}
}

func newTestWizard(balances BalanceSource, settler Settler) *Wizard {
	w := newWizard("wiz-1", "user-1", testCar(), balances, settler)
	w.now = func() time.Time { return mustDate("2024-06-15") }
	return w
}

func mustDate(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func advanceToReview(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-18")))
	require.NoError(t, w.Next())
	require.NoError(t, w.SetLocations("Airport", "Downtown"))
	require.NoError(t, w.Next())
	require.Equal(t, StateReview, w.State())
}

func TestWizard_SetDates_RecomputesPrice(t *testing.T) {
	w := newTestWizard(&stubBalances{}, &stubSettler{})

	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-18")))
	assert.Equal(t, "100.00", w.Draft().TotalPrice.StringFixed(2))

	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-17")))
	assert.Equal(t, "50.00", w.Draft().TotalPrice.StringFixed(2))
}

func TestWizard_SetDates_RejectsPastAndInverted(t *testing.T) {
	w := newTestWizard(&stubBalances{}, &stubSettler{})

	assert.ErrorIs(t, w.SetDates(mustDate("2024-06-14"), mustDate("2024-06-18")), model.ErrInvalidDates)
	assert.ErrorIs(t, w.SetDates(mustDate("2024-06-18"), mustDate("2024-06-16")), model.ErrInvalidDates)
	assert.Equal(t, StateDateSelection, w.State())
}

func TestWizard_Next_GuardsEachStep(t *testing.T) {
	w := newTestWizard(&stubBalances{}, &stubSettler{})

	// No dates yet: cannot leave the date step.
	assert.ErrorIs(t, w.Next(), model.ErrInvalidDates)

	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-18")))
	require.NoError(t, w.Next())
	assert.Equal(t, StateLocationSelection, w.State())

	// Empty locations: cannot reach review.
	assert.ErrorIs(t, w.Next(), model.ErrMissingLocations)
	require.NoError(t, w.SetLocations("Airport", "   "))
	assert.ErrorIs(t, w.Next(), model.ErrMissingLocations)

	require.NoError(t, w.SetLocations("Airport", "Downtown"))
	require.NoError(t, w.Next())
	assert.Equal(t, StateReview, w.State())
}

func TestWizard_Back_PreservesFields(t *testing.T) {
	w := newTestWizard(&stubBalances{}, &stubSettler{})
	advanceToReview(t, w)

	require.NoError(t, w.Back())
	assert.Equal(t, StateLocationSelection, w.State())
	require.NoError(t, w.Back())
	assert.Equal(t, StateDateSelection, w.State())

	draft := w.Draft()
	assert.Equal(t, "Airport", draft.PickupLocation)
	assert.Equal(t, "Downtown", draft.DropoffLocation)
	assert.Equal(t, mustDate("2024-06-16"), draft.StartDate)
	assert.Equal(t, "100.00", draft.TotalPrice.StringFixed(2))

	// And forward again without re-entering anything.
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	assert.Equal(t, StateReview, w.State())
}

func TestWizard_Confirm_BlockedOnInsufficientBalance(t *testing.T) {
	settler := &stubSettler{}
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(30)}, settler)
	advanceToReview(t, w)

	_, err := w.Confirm(context.Background())

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.Equal(t, StateReview, w.State())
	assert.Zero(t, settler.callCount())
}

func TestWizard_Confirm_SkippingStepsIsImpossible(t *testing.T) {
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(1000)}, &stubSettler{})

	_, err := w.Confirm(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-18")))
	require.NoError(t, w.Next())
	_, err = w.Confirm(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestWizard_Confirm_Success(t *testing.T) {
	settler := &stubSettler{booking: &model.Booking{ID: "bk-1", Status: model.StatusConfirmed}}
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(500)}, settler)
	advanceToReview(t, w)

	booking, err := w.Confirm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "bk-1", booking.ID)
	assert.Equal(t, StateCommitted, w.State())
	assert.Equal(t, 1, settler.callCount())
}

func TestWizard_Confirm_SingleInFlight(t *testing.T) {
	settler := &stubSettler{
		booking: &model.Booking{ID: "bk-1"},
		block:   make(chan struct{}),
	}
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(500)}, settler)
	advanceToReview(t, w)

	first := make(chan error, 1)
	go func() {
		_, err := w.Confirm(context.Background())
		first <- err
	}()
	require.Eventually(t, func() bool { return settler.callCount() == 1 }, time.Second, time.Millisecond)

	// A second confirm while the first is in flight is rejected, so a
	// double-click can never double-charge.
	_, err := w.Confirm(context.Background())
	assert.ErrorIs(t, err, model.ErrCommitInFlight)

	close(settler.block)
	require.NoError(t, <-first)
	assert.Equal(t, 1, settler.callCount())
}

func TestWizard_Confirm_FailureReenablesCommit(t *testing.T) {
	settler := &stubSettler{err: errors.New("remote unavailable")}
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(500)}, settler)
	advanceToReview(t, w)

	_, err := w.Confirm(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateReview, w.State())

	// The control is usable again for a deliberate retry.
	settler.err = nil
	settler.booking = &model.Booking{ID: "bk-2"}
	booking, err := w.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bk-2", booking.ID)
}

func TestWizard_Close_DiscardsDraft(t *testing.T) {
	settler := &stubSettler{}
	w := newTestWizard(&stubBalances{}, settler)
	require.NoError(t, w.SetDates(mustDate("2024-06-16"), mustDate("2024-06-18")))

	w.Close()

	assert.Equal(t, StateAbandoned, w.State())
	assert.Zero(t, settler.callCount())
}

func TestWizard_Close_AfterCommitKeepsCommitted(t *testing.T) {
	settler := &stubSettler{booking: &model.Booking{ID: "bk-1"}}
	w := newTestWizard(&stubBalances{balance: decimal.NewFromInt(500)}, settler)
	advanceToReview(t, w)

	_, err := w.Confirm(context.Background())
	require.NoError(t, err)

	w.Close()
	assert.Equal(t, StateCommitted, w.State())
}
