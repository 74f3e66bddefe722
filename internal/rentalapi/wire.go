package rentalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rental-storefront/internal/model"

	"github.com/shopspring/decimal"
)

type tokenContextKey struct{}

// WithToken attaches the session's remote credential to outbound calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// wireDate marshals as a calendar date and unmarshals either a calendar date
// or the full timestamps the service stores internally.
type wireDate time.Time

func (d wireDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(model.DateLayout) + `"`), nil
}

func (d *wireDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = wireDate(time.Time{})
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = wireDate(t)
		return nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = wireDate(t)
	return nil
}

type wireCar struct {
	ID           string          `json:"_id"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Type         string          `json:"type"`
	Transmission string          `json:"transmission"`
	PricePerDay  decimal.Decimal `json:"pricePerDay"`
	MainImage    string          `json:"mainImage"`
}

func (w *wireCar) toModel() *model.Car {
	return &model.Car{
		ID:           w.ID,
		Make:         w.Make,
		Model:        w.Model,
		Year:         w.Year,
		Type:         w.Type,
		Transmission: w.Transmission,
		PricePerDay:  w.PricePerDay,
		MainImage:    w.MainImage,
	}
}

type createBookingRequest struct {
	User            string              `json:"user"`
	Car             string              `json:"car"`
	StartDate       wireDate            `json:"startDate"`
	EndDate         wireDate            `json:"endDate"`
	PickupLocation  string              `json:"pickupLocation"`
	DropoffLocation string              `json:"dropoffLocation"`
	TotalPrice      decimal.Decimal     `json:"totalPrice"`
	Status          model.BookingStatus `json:"status"`
}

// wireBooking tolerates both the id-only and the populated car shape the
// service returns depending on the endpoint.
type wireBooking struct {
	ID              string          `json:"_id"`
	Car             json.RawMessage `json:"car"`
	User            string          `json:"user"`
	StartDate       wireDate        `json:"startDate"`
	EndDate         wireDate        `json:"endDate"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	CreatedAt       wireDate        `json:"createdAt"`
}

func (w *wireBooking) toModel() *model.Booking {
	b := &model.Booking{
		ID:              w.ID,
		UserID:          w.User,
		StartDate:       time.Time(w.StartDate),
		EndDate:         time.Time(w.EndDate),
		PickupLocation:  w.PickupLocation,
		DropoffLocation: w.DropoffLocation,
		TotalPrice:      w.TotalPrice,
		CreatedAt:       time.Time(w.CreatedAt),
	}

	if status, err := model.ParseBookingStatus(w.Status); err == nil {
		b.Status = status
	} else {
		// Unknown statuses are preserved verbatim rather than invented away.
		b.Status = model.BookingStatus(w.Status)
	}

	if len(w.Car) > 0 {
		var carID string
		if err := json.Unmarshal(w.Car, &carID); err == nil {
			b.CarID = carID
		} else {
			var car wireCar
			if err := json.Unmarshal(w.Car, &car); err == nil {
				b.CarID = car.ID
				b.Car = car.toModel()
			}
		}
	}
	return b
}

type wireTransaction struct {
	ID          string          `json:"_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        wireDate        `json:"date"`
}

type wireWallet struct {
	Balance      decimal.Decimal   `json:"balance"`
	Transactions []wireTransaction `json:"transactions"`
}

func (w *wireWallet) toModel() *model.WalletSnapshot {
	snapshot := &model.WalletSnapshot{
		Balance:      w.Balance,
		Transactions: make([]model.Transaction, 0, len(w.Transactions)),
	}
	for _, t := range w.Transactions {
		tt, err := model.ParseTransactionType(t.Type)
		if err != nil {
			tt = model.TransactionType(t.Type)
		}
		snapshot.Transactions = append(snapshot.Transactions, model.Transaction{
			ID:          t.ID,
			Type:        tt,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        time.Time(t.Date),
		})
	}
	return snapshot
}
