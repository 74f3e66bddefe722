package handler

import (
	"net/http"

	"rental-storefront/internal/model"
	"rental-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// ListBookings
// @Summary List the user's bookings
// @Description Bookings with duration and review flags, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(all, completed, cancelled)
// @Success 200 {array} lifecycle.BookingView
// @Router /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	user := session.CurrentUser(c)
	views, err := h.lifecycle.ListBookings(c.Request.Context(), user.ID, c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CancelBooking
// @Summary Cancel a booking
// @Description Cancels an eligible booking; the service refunds the wallet
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} model.Booking
// @Failure 404 {object} model.ErrorResponse "Booking not found"
// @Failure 409 {object} model.ErrorResponse "Booking not cancellable"
// @Router /bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	user := session.CurrentUser(c)
	cancelled, err := h.lifecycle.Cancel(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// GetLedger
// @Summary Get the transaction ledger
// @Description Mounts the ledger on first use, then serves the polled snapshot
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TransactionListResponse
// @Failure 502 {object} model.ErrorResponse "First load failed, retry"
// @Router /ledger [get]
func (h *Handler) GetLedger(c *gin.Context) {
	user := session.CurrentUser(c)
	if err := h.ledger.Mount(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusBadGateway, model.ErrorResponse{
			Error:   "transaction history is unavailable right now",
			Code:    "LEDGER_UNAVAILABLE",
			Details: "Try again in a moment",
		})
		return
	}

	transactions, _ := h.ledger.Snapshot(user.ID)
	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// UnwatchLedger
// @Summary Stop watching the ledger
// @Description Unmounts the polling task for this user
// @Tags ledger
// @Security BearerAuth
// @Success 204 "No content"
// @Router /ledger/watch [delete]
func (h *Handler) UnwatchLedger(c *gin.Context) {
	user := session.CurrentUser(c)
	h.ledger.Unmount(user.ID)
	c.Status(http.StatusNoContent)
}

// GetReviewStatus
// @Summary Check review existence
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]bool
// @Router /reviews/booking/{id} [get]
func (h *Handler) GetReviewStatus(c *gin.Context) {
	exists, err := h.lifecycle.HasReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// SubmitReview
// @Summary Submit a review for a completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body model.ReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} model.ErrorResponse "Invalid rating or comment"
// @Failure 409 {object} model.ErrorResponse "Review already exists"
// @Router /reviews/booking/{id} [post]
func (h *Handler) SubmitReview(c *gin.Context) {
	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "rating and comment are required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	bookingID := c.Param("id")
	if err := h.lifecycle.SubmitReview(c.Request.Context(), bookingID, req.Rating, req.Comment); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.Review{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
}
