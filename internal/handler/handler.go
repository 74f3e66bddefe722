package handler

import (
	"errors"
	"net/http"

	"rental-storefront/internal/booking"
	"rental-storefront/internal/ledger"
	"rental-storefront/internal/lifecycle"
	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/session"
	"rental-storefront/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	api       rentalapi.API
	sessions  *session.Manager
	wizards   *booking.Manager
	wallet    *wallet.Store
	ledger    *ledger.Poller
	lifecycle *lifecycle.Service
	logger    zerolog.Logger
}

func NewHandler(
	api rentalapi.API,
	sessions *session.Manager,
	wizards *booking.Manager,
	walletStore *wallet.Store,
	poller *ledger.Poller,
	lifecycleSvc *lifecycle.Service,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		api:       api,
		sessions:  sessions,
		wizards:   wizards,
		wallet:    walletStore,
		ledger:    poller,
		lifecycle: lifecycleSvc,
		logger:    logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.POST("/session", h.Login)

	authed := v1.Group("", h.sessions.Middleware())
	authed.DELETE("/session", h.Logout)

	authed.GET("/cars/:id", h.GetCar)

	wizard := authed.Group("/wizard")
	wizard.POST("", h.StartWizard)
	wizard.GET("/:id", h.GetWizard)
	wizard.PUT("/:id/dates", h.SetWizardDates)
	wizard.PUT("/:id/locations", h.SetWizardLocations)
	wizard.POST("/:id/next", h.WizardNext)
	wizard.POST("/:id/back", h.WizardBack)
	wizard.POST("/:id/confirm", h.ConfirmWizard)
	wizard.DELETE("/:id", h.CloseWizard)

	walletGroup := authed.Group("/wallet")
	walletGroup.GET("", h.GetBalance)
	walletGroup.POST("/refresh", h.RefreshBalance)
	walletGroup.POST("/add-funds", h.AddFunds)
	walletGroup.GET("/stream", h.StreamBalance)

	authed.GET("/ledger", h.GetLedger)
	authed.DELETE("/ledger/watch", h.UnwatchLedger)

	authed.GET("/bookings", h.ListBookings)
	authed.POST("/bookings/:id/cancel", h.CancelBooking)

	authed.GET("/reviews/booking/:id", h.GetReviewStatus)
	authed.POST("/reviews/booking/:id", h.SubmitReview)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusPaymentRequired
		code = "INSUFFICIENT_BALANCE"
		resp.RechargeRequired = true
		resp.Details = "Add funds to your wallet to complete this booking"
	case errors.Is(err, model.ErrPaymentFailed):
		status = http.StatusBadGateway
		code = "PAYMENT_FAILED"
		resp.Details = "The booking is on hold. Do not retry; contact support to resolve the payment"
	case errors.Is(err, model.ErrInvalidDates):
		status = http.StatusBadRequest
		code = "INVALID_DATES"
	case errors.Is(err, model.ErrMissingLocations):
		status = http.StatusBadRequest
		code = "MISSING_LOCATIONS"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidRating):
		status = http.StatusBadRequest
		code = "INVALID_RATING"
	case errors.Is(err, model.ErrInvalidComment):
		status = http.StatusBadRequest
		code = "INVALID_COMMENT"
	case errors.Is(err, model.ErrInvalidStatus):
		status = http.StatusBadRequest
		code = "INVALID_STATUS"
	case errors.Is(err, model.ErrReviewExists):
		status = http.StatusConflict
		code = "REVIEW_EXISTS"
	case errors.Is(err, model.ErrBookingNotCancellable):
		status = http.StatusConflict
		code = "BOOKING_NOT_CANCELLABLE"
	case errors.Is(err, model.ErrInvalidTransition):
		status = http.StatusConflict
		code = "INVALID_STEP"
	case errors.Is(err, model.ErrCommitInFlight):
		status = http.StatusConflict
		code = "COMMIT_IN_FLIGHT"
	case errors.Is(err, model.ErrCarNotFound):
		status = http.StatusNotFound
		code = "CAR_NOT_FOUND"
	case errors.Is(err, model.ErrBookingNotFound):
		status = http.StatusNotFound
		code = "BOOKING_NOT_FOUND"
	case errors.Is(err, model.ErrWizardNotFound):
		status = http.StatusNotFound
		code = "WIZARD_NOT_FOUND"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "UNAUTHORIZED"
	default:
		var apiErr *rentalapi.APIError
		if errors.As(err, &apiErr) {
			status = http.StatusBadGateway
			code = "UPSTREAM_ERROR"
		}
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
