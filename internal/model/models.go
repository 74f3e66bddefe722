package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Car struct {
	ID           string          `json:"id"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Type         string          `json:"type"`
	Transmission string          `json:"transmission"`
	PricePerDay  decimal.Decimal `json:"pricePerDay"`
	MainImage    string          `json:"mainImage,omitempty"`
}

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	License string `json:"license,omitempty"`
	Token   string `json:"token"`
}

type Booking struct {
	ID              string          `json:"id"`
	CarID           string          `json:"carId"`
	Car             *Car            `json:"car,omitempty"`
	UserID          string          `json:"userId"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          BookingStatus   `json:"status"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
}

// BookingDraft is a wizard's in-progress reservation. It lives only in
// wizard memory and is discarded on close; it is never partially submitted.
type BookingDraft struct {
	CarID           string          `json:"carId"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// WalletSnapshot is the remote wallet state for one user: the current
// balance plus the transaction ledger in server-insertion order.
type WalletSnapshot struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

type Review struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ErrorResponse struct {
	Error            string `json:"error" example:"insufficient balance"`
	Code             string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details          string `json:"details,omitempty"`
	RechargeRequired bool   `json:"recharge_required,omitempty"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id" example:"661f0c2a9b3e4d0012ab34cd"`
	Balance string `json:"balance" example:"420.00"`
}

type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}
