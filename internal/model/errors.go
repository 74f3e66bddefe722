package model

import "errors"

var (
	ErrInsufficientBalance    = errors.New("insufficient wallet balance")
	ErrInvalidDates           = errors.New("invalid date range")
	ErrMissingLocations       = errors.New("pickup and dropoff locations are required")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrInvalidComment         = errors.New("comment must be between 10 and 500 characters")
	ErrReviewExists           = errors.New("review already submitted for this booking")
	ErrCarNotFound            = errors.New("car not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingNotCancellable  = errors.New("booking can no longer be cancelled")
	ErrWizardNotFound         = errors.New("booking wizard not found")
	ErrInvalidTransition      = errors.New("transition not permitted from current step")
	ErrCommitInFlight         = errors.New("a commit is already in progress")
	ErrPaymentFailed          = errors.New("booking held, payment failed")
	ErrUnauthorized           = errors.New("unauthorized")
)
