package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"rental-storefront/internal/config"
	"rental-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// APIError is a business error reported by the remote service, carried with
// the HTTP status it arrived on. The message is passed through to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("rental api returned status %d", e.Status)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg config.RentalAPIConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) GetCar(ctx context.Context, carID string) (*model.Car, error) {
	var out wireCar
	if err := c.do(ctx, http.MethodGet, "/cars/"+carID, nil, &out); err != nil {
		return nil, notFoundAs(err, model.ErrCarNotFound, "get car")
	}
	return out.toModel(), nil
}

func (c *Client) CreateBooking(ctx context.Context, userID string, draft *model.BookingDraft) (*model.Booking, error) {
	body := createBookingRequest{
		User:            userID,
		Car:             draft.CarID,
		StartDate:       wireDate(draft.StartDate),
		EndDate:         wireDate(draft.EndDate),
		PickupLocation:  draft.PickupLocation,
		DropoffLocation: draft.DropoffLocation,
		TotalPrice:      draft.TotalPrice,
		Status:          model.StatusPending,
	}

	var out struct {
		Booking *wireBooking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings", body, &out); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if out.Booking == nil {
		return nil, fmt.Errorf("create booking: %w", &APIError{Status: http.StatusBadGateway, Message: "booking missing from response"})
	}
	return out.Booking.toModel(), nil
}

func (c *Client) CapturePayment(ctx context.Context, bookingID, userID string) (decimal.Decimal, error) {
	body := map[string]string{"user": userID}

	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings/"+bookingID+"/payment", body, &out); err != nil {
		return decimal.Zero, notFoundAs(err, model.ErrBookingNotFound, "capture payment")
	}
	return out.Balance, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status model.BookingStatus) error {
	body := map[string]string{"status": status.String()}
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+bookingID, body, nil); err != nil {
		return notFoundAs(err, model.ErrBookingNotFound, "update booking status")
	}
	return nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if err := c.do(ctx, http.MethodPost, "/bookings/"+bookingID+"/cancel", nil, nil); err != nil {
		return notFoundAs(err, model.ErrBookingNotFound, "cancel booking")
	}
	return nil
}

func (c *Client) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	var out []wireBooking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+userID, nil, &out); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookings := make([]model.Booking, 0, len(out))
	for _, b := range out {
		bookings = append(bookings, *b.toModel())
	}
	return bookings, nil
}

func (c *Client) GetWallet(ctx context.Context, userID string) (*model.WalletSnapshot, error) {
	var out wireWallet
	if err := c.do(ctx, http.MethodGet, "/wallet/"+userID, nil, &out); err != nil {
		return nil, notFoundAs(err, model.ErrUserNotFound, "get wallet")
	}
	return out.toModel(), nil
}

func (c *Client) AddFunds(ctx context.Context, req *AddFundsRequest) (decimal.Decimal, error) {
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.do(ctx, http.MethodPost, "/wallet/add-funds", req, &out); err != nil {
		return decimal.Zero, fmt.Errorf("add funds: %w", err)
	}
	return out.Balance, nil
}

func (c *Client) ReviewExists(ctx context.Context, bookingID string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := c.do(ctx, http.MethodGet, "/reviews/booking/"+bookingID, nil, &out); err != nil {
		return false, notFoundAs(err, model.ErrBookingNotFound, "get review")
	}
	return out.Exists, nil
}

func (c *Client) CreateReview(ctx context.Context, review *model.Review) error {
	body := map[string]any{
		"rating":  review.Rating,
		"comment": review.Comment,
	}
	if err := c.do(ctx, http.MethodPost, "/reviews/booking/"+review.BookingID, body, nil); err != nil {
		return notFoundAs(err, model.ErrBookingNotFound, "create review")
	}
	return nil
}

// do performs a single JSON round trip. The bearer token travels in the
// context because each storefront session carries its own remote credential.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = body.Error
		}
	}

	c.logger.Debug().Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("rental api error")
	return apiErr
}

// notFoundAs maps a remote 404 onto the matching domain sentinel and wraps
// everything else with the operation name.
func notFoundAs(err error, sentinel error, op string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, sentinel)
	}
	return fmt.Errorf("%s: %w", op, err)
}
