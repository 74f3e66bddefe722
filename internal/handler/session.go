package handler

import (
	"net/http"

	"rental-storefront/internal/model"
	"rental-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// Login
// @Summary Open a session
// @Description Stores the rental-service identity and issues a session token
// @Tags session
// @Accept json
// @Produce json
// @Param user body model.User true "Authenticated rental-service user"
// @Success 201 {object} model.SessionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /session [post]
func (h *Handler) Login(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil || user.ID == "" || user.Token == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "id and token are required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	token, err := h.sessions.Login(c.Request.Context(), &user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.SessionResponse{Token: token, User: user})
}

// Logout
// @Summary Close the session
// @Description Deletes the identity and clears the cached wallet balance
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 204 "No content"
// @Router /session [delete]
func (h *Handler) Logout(c *gin.Context) {
	user := session.CurrentUser(c)
	if err := h.sessions.Logout(c.Request.Context(), user.ID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCar
// @Summary Get a car
// @Description Returns the car a wizard prices against
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} model.Car
// @Failure 404 {object} model.ErrorResponse "Car not found"
// @Router /cars/{id} [get]
func (h *Handler) GetCar(c *gin.Context) {
	car, err := h.api.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}
