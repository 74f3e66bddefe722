package handler

import (
	"errors"
	"net/http"

	"rental-storefront/internal/booking"
	"rental-storefront/internal/model"
	"rental-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// wizardView is the wizard as the frontend renders it: current step, draft
// fields and the cached balance the review step compares against.
type wizardView struct {
	ID      string             `json:"id"`
	State   booking.State      `json:"state"`
	Car     *model.Car         `json:"car"`
	Draft   model.BookingDraft `json:"draft"`
	Balance string             `json:"balance"`
}

func (h *Handler) wizardView(w *booking.Wizard) wizardView {
	return wizardView{
		ID:      w.ID,
		State:   w.State(),
		Car:     w.Car,
		Draft:   w.Draft(),
		Balance: h.wallet.Balance(w.UserID).StringFixed(2),
	}
}

func (h *Handler) wizard(c *gin.Context) (*booking.Wizard, bool) {
	user := session.CurrentUser(c)
	w, err := h.wizards.Get(c.Param("id"), user.ID)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return w, true
}

// StartWizard
// @Summary Start a booking wizard
// @Description Opens a reservation flow for a car and warms the wallet cache
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.StartWizardRequest true "Car to book"
// @Success 201 {object} wizardView
// @Failure 404 {object} model.ErrorResponse "Car not found"
// @Router /wizard [post]
func (h *Handler) StartWizard(c *gin.Context) {
	var req model.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "carId is required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	user := session.CurrentUser(c)
	w, err := h.wizards.Start(c.Request.Context(), user.ID, req.CarID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.wizardView(w))
}

// GetWizard
// @Summary Get wizard state
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} wizardView
// @Failure 404 {object} model.ErrorResponse "Wizard not found"
// @Router /wizard/{id} [get]
func (h *Handler) GetWizard(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.wizardView(w))
}

// SetWizardDates
// @Summary Set rental dates
// @Description Records the rental period and recomputes the total price
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body model.WizardDatesRequest true "Rental period"
// @Success 200 {object} wizardView
// @Failure 400 {object} model.ErrorResponse "Invalid dates"
// @Router /wizard/{id}/dates [put]
func (h *Handler) SetWizardDates(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req model.WizardDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.ErrInvalidDates)
		return
	}
	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := model.ParseDate(req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := w.SetDates(start, end); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardView(w))
}

// SetWizardLocations
// @Summary Set pickup and dropoff locations
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body model.WizardLocationsRequest true "Locations"
// @Success 200 {object} wizardView
// @Router /wizard/{id}/locations [put]
func (h *Handler) SetWizardLocations(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req model.WizardLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.ErrMissingLocations)
		return
	}
	if err := w.SetLocations(req.PickupLocation, req.DropoffLocation); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardView(w))
}

// WizardNext
// @Summary Advance the wizard one step
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} wizardView
// @Failure 400 {object} model.ErrorResponse "Step guard failed"
// @Router /wizard/{id}/next [post]
func (h *Handler) WizardNext(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	if err := w.Next(); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardView(w))
}

// WizardBack
// @Summary Go back one step, keeping all entered fields
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} wizardView
// @Router /wizard/{id}/back [post]
func (h *Handler) WizardBack(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	if err := w.Back(); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardView(w))
}

// ConfirmWizard
// @Summary Confirm the booking
// @Description Creates the booking and captures payment from the wallet
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 201 {object} model.Booking
// @Failure 402 {object} model.ErrorResponse "Insufficient balance"
// @Failure 502 {object} model.ErrorResponse "Booking or payment failed"
// @Router /wizard/{id}/confirm [post]
func (h *Handler) ConfirmWizard(c *gin.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	confirmed, err := w.Confirm(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInsufficientBalance),
			errors.Is(err, model.ErrPaymentFailed),
			errors.Is(err, model.ErrCommitInFlight),
			errors.Is(err, model.ErrInvalidTransition):
			h.handleError(c, err)
		default:
			// The booking was never created; a retry is safe and free.
			c.JSON(http.StatusBadGateway, model.ErrorResponse{
				Error:   err.Error(),
				Code:    "BOOKING_FAILED",
				Details: "No charge was made. You can safely try again",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, confirmed)
}

// CloseWizard
// @Summary Close the wizard
// @Description Abandons the draft; nothing was submitted
// @Tags wizard
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 204 "No content"
// @Router /wizard/{id} [delete]
func (h *Handler) CloseWizard(c *gin.Context) {
	user := session.CurrentUser(c)
	if err := h.wizards.Close(c.Param("id"), user.ID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
