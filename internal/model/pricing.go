package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// RentalDays returns the whole-day duration of a rental: the ceiling of the
// start/end difference, with a floor of one day. Same-day rentals are charged
// one full day.
func RentalDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice derives the charge for a date range. The wizard displays this
// value and the remote service persists it; both must come from this rule so
// display and charge never diverge.
func TotalPrice(start, end time.Time, pricePerDay decimal.Decimal) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(int64(RentalDays(start, end))))
}

// ValidateDateRange enforces the wizard's date guard: start date today or
// later, end date not before start. now anchors "today" so tests can pin it.
func ValidateDateRange(start, end, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if start.Before(today) {
		return ErrInvalidDates
	}
	if end.Before(start) {
		return ErrInvalidDates
	}
	return nil
}

// ValidateReview applies the client-side review rules. Invalid reviews are
// never sent to the remote service.
func ValidateReview(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if len(comment) < 10 || len(comment) > 500 {
		return ErrInvalidComment
	}
	return nil
}

// ParseDate parses a calendar date in the wire format used by the storefront
// and the remote service.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDates
	}
	return t, nil
}
