package model

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusFailed    BookingStatus = "failed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch s {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusConfirmed):
		return StatusConfirmed, nil
	case string(StatusCompleted):
		return StatusCompleted, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	case string(StatusFailed):
		return StatusFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s BookingStatus) String() string {
	return string(s)
}

// Terminal reports whether no client action may move the booking to another
// status. A booking never regresses out of a terminal status.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// Cancellable reports whether the cancel affordance applies.
func (s BookingStatus) Cancellable() bool {
	return s != StatusCompleted && s != StatusCancelled
}

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case string(TypeCredit):
		return TypeCredit, nil
	case string(TypeDebit):
		return TypeDebit, nil
	default:
		return "", ErrInvalidTransactionType
	}
}

func (t TransactionType) String() string {
	return string(t)
}
