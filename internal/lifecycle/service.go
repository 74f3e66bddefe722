package lifecycle

import (
	"context"
	"strings"

	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/wallet"

	"github.com/rs/zerolog"
)

// BookingView is a booking decorated for display: rental duration in days
// and, for completed bookings, whether a review was already left.
type BookingView struct {
	model.Booking
	DurationDays int  `json:"durationDays"`
	HasReview    bool `json:"hasReview"`
}

// Service covers the booking list: listing with review lookups, cancelling,
// and submitting reviews.
type Service struct {
	api    rentalapi.API
	wallet *wallet.Store
	logger zerolog.Logger
}

func NewService(api rentalapi.API, walletStore *wallet.Store, logger zerolog.Logger) *Service {
	return &Service{
		api:    api,
		wallet: walletStore,
		logger: logger,
	}
}

// ListBookings returns the user's bookings, optionally filtered by status.
// Review existence is looked up for completed bookings only; a failed lookup
// counts as no review, so the list never fails over a cosmetic flag.
func (s *Service) ListBookings(ctx context.Context, userID, statusFilter string) ([]BookingView, error) {
	bookings, err := s.api.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := strings.TrimSpace(strings.ToLower(statusFilter))
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		if filter != "" && filter != "all" && string(b.Status) != filter {
			continue
		}

		view := BookingView{
			Booking:      b,
			DurationDays: model.RentalDays(b.StartDate, b.EndDate),
		}
		if b.Status == model.StatusCompleted {
			exists, err := s.api.ReviewExists(ctx, b.ID)
			if err != nil {
				s.logger.Debug().Err(err).Str("booking_id", b.ID).Msg("review lookup failed, assuming none")
			} else {
				view.HasReview = exists
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Cancel cancels a booking. Completed and already-cancelled bookings are
// rejected before any remote call, so a status never moves backwards. The
// server issues the refund; the wallet refresh picks it up.
func (s *Service) Cancel(ctx context.Context, userID, bookingID string) (*model.Booking, error) {
	bookings, err := s.api.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	var booking *model.Booking
	for i := range bookings {
		if bookings[i].ID == bookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, model.ErrBookingNotFound
	}
	if !booking.Status.Cancellable() {
		return nil, model.ErrBookingNotCancellable
	}

	if err := s.api.CancelBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	booking.Status = model.StatusCancelled

	if _, err := s.wallet.Refresh(ctx, userID); err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("booking_id", bookingID).
			Msg("post-cancel balance refresh failed, refund appears on next sync")
	}

	s.logger.Info().Str("booking_id", bookingID).Str("user_id", userID).Msg("booking cancelled")
	return booking, nil
}

// SubmitReview validates and submits a review. Invalid input never reaches
// the remote service, and a booking that already has a review is rejected
// before the create call.
func (s *Service) SubmitReview(ctx context.Context, bookingID string, rating int, comment string) error {
	if err := model.ValidateReview(rating, comment); err != nil {
		return err
	}

	exists, err := s.api.ReviewExists(ctx, bookingID)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrReviewExists
	}

	return s.api.CreateReview(ctx, &model.Review{
		BookingID: bookingID,
		Rating:    rating,
		Comment:   comment,
	})
}

// HasReview reports whether a booking already carries a review.
func (s *Service) HasReview(ctx context.Context, bookingID string) (bool, error) {
	return s.api.ReviewExists(ctx, bookingID)
}
