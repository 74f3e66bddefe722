package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"rental-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// State is a named wizard step. Transitions are guarded; an illegal jump
// (e.g. straight to payment) is unrepresentable rather than merely checked.
type State string

const (
	StateDateSelection     State = "date_selection"
	StateLocationSelection State = "location_selection"
	StateReview            State = "review"
	StateCommitted         State = "committed"
	StateAbandoned         State = "abandoned"
)

// BalanceSource is the cached-balance read the wizard guards commits on.
type BalanceSource interface {
	Balance(userID string) decimal.Decimal
}

// Settler performs the booking/payment settlement on confirm.
type Settler interface {
	Settle(ctx context.Context, userID string, draft *model.BookingDraft) (*model.Booking, error)
}

// Wizard is one user's in-progress reservation flow. The draft lives only
// here: closing the wizard discards it without a server call, and nothing is
// submitted until Confirm.
type Wizard struct {
	ID     string
	UserID string
	Car    *model.Car

	balances BalanceSource
	settler  Settler
	now      func() time.Time

	mu         sync.Mutex
	state      State
	draft      model.BookingDraft
	committing bool
}

func newWizard(id, userID string, car *model.Car, balances BalanceSource, settler Settler) *Wizard {
	return &Wizard{
		ID:       id,
		UserID:   userID,
		Car:      car,
		balances: balances,
		settler:  settler,
		now:      time.Now,
		state:    StateDateSelection,
		draft:    model.BookingDraft{CarID: car.ID},
	}
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Wizard) Draft() model.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SetDates records the rental dates and recomputes the price. Permitted only
// on the date step; revisiting via Back re-enables it with fields intact.
func (w *Wizard) SetDates(start, end time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateDateSelection {
		return model.ErrInvalidTransition
	}
	if err := model.ValidateDateRange(start, end, w.now()); err != nil {
		return err
	}

	w.draft.StartDate = start
	w.draft.EndDate = end
	w.draft.TotalPrice = model.TotalPrice(start, end, w.Car.PricePerDay)
	return nil
}

// SetLocations records pickup and dropoff. Emptiness is checked on advance,
// not here, so partial input is never lost.
func (w *Wizard) SetLocations(pickup, dropoff string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateLocationSelection {
		return model.ErrInvalidTransition
	}
	w.draft.PickupLocation = strings.TrimSpace(pickup)
	w.draft.DropoffLocation = strings.TrimSpace(dropoff)
	return nil
}

// Next advances one step when the current step's guard passes.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateDateSelection:
		if w.draft.StartDate.IsZero() || w.draft.EndDate.IsZero() {
			return model.ErrInvalidDates
		}
		w.state = StateLocationSelection
		return nil
	case StateLocationSelection:
		if w.draft.PickupLocation == "" || w.draft.DropoffLocation == "" {
			return model.ErrMissingLocations
		}
		w.state = StateReview
		return nil
	default:
		return model.ErrInvalidTransition
	}
}

// Back is always permitted between non-terminal steps and loses no fields.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateReview:
		w.state = StateLocationSelection
	case StateLocationSelection:
		w.state = StateDateSelection
	case StateDateSelection:
		// already at the first step
	default:
		return model.ErrInvalidTransition
	}
	return nil
}

// Confirm commits the draft. Blocked when the cached balance cannot cover
// the price (the caller shows the recharge affordance) and while another
// commit is in flight (double-click protection). On failure the wizard stays
// on the review step so the user can retry deliberately.
func (w *Wizard) Confirm(ctx context.Context) (*model.Booking, error) {
	w.mu.Lock()
	if w.state != StateReview {
		w.mu.Unlock()
		return nil, model.ErrInvalidTransition
	}
	if w.committing {
		w.mu.Unlock()
		return nil, model.ErrCommitInFlight
	}
	if w.balances.Balance(w.UserID).LessThan(w.draft.TotalPrice) {
		w.mu.Unlock()
		return nil, model.ErrInsufficientBalance
	}
	w.committing = true
	draft := w.draft
	w.mu.Unlock()

	booking, err := w.settler.Settle(ctx, w.UserID, &draft)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.committing = false
	if err != nil {
		return nil, err
	}
	w.state = StateCommitted
	return booking, nil
}

// Close abandons the wizard and discards the draft. No server call is made;
// closing after a successful commit keeps the committed state.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateCommitted {
		w.state = StateAbandoned
	}
}
