package model

// StartWizardRequest opens a booking wizard for a car.
type StartWizardRequest struct {
	CarID string `json:"carId" binding:"required" example:"6617f3a09b3e4d0012ab34aa"`
}

// WizardDatesRequest sets the rental period. Calendar dates, local to the
// pickup location.
type WizardDatesRequest struct {
	StartDate string `json:"startDate" binding:"required" example:"2026-09-10"`
	EndDate   string `json:"endDate" binding:"required" example:"2026-09-12"`
}

type WizardLocationsRequest struct {
	PickupLocation  string `json:"pickupLocation" example:"Airport"`
	DropoffLocation string `json:"dropoffLocation" example:"Downtown"`
}

// AddFundsRequest is the top-up form as the browser submits it. Card fields
// arrive as typed, including spaces and separators; normalization happens
// before the remote call.
type AddFundsRequest struct {
	Amount     string `json:"amount" binding:"required" example:"100.00"`
	CardNumber string `json:"cardNumber" binding:"required" example:"4242 4242 4242 4242"`
	ExpiryDate string `json:"expiryDate" binding:"required" example:"12/27"`
	CVV        string `json:"cvv" binding:"required" example:"123"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required" example:"5"`
	Comment string `json:"comment" binding:"required" example:"Smooth pickup and a clean car"`
}

type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
