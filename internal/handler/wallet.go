package handler

import (
	"net/http"
	"strings"

	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetBalance
// @Summary Get the cached wallet balance
// @Description Synchronous read of the last known balance; zero if unknown
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Router /wallet [get]
func (h *Handler) GetBalance(c *gin.Context) {
	user := session.CurrentUser(c)
	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  user.ID,
		Balance: h.wallet.Balance(user.ID).StringFixed(2),
	})
}

// RefreshBalance
// @Summary Refresh the wallet balance
// @Description Fetches the authoritative balance from the rental service
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 502 {object} model.ErrorResponse "Rental service unavailable"
// @Router /wallet/refresh [post]
func (h *Handler) RefreshBalance(c *gin.Context) {
	user := session.CurrentUser(c)
	balance, err := h.wallet.Refresh(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  user.ID,
		Balance: balance.StringFixed(2),
	})
}

// AddFunds
// @Summary Add funds to the wallet
// @Description Normalizes the card fields, tops up the wallet and refreshes the balance
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddFundsRequest true "Top-up details"
// @Success 200 {object} model.BalanceResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount or card fields"
// @Router /wallet/add-funds [post]
func (h *Handler) AddFunds(c *gin.Context) {
	var req model.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "amount, cardNumber, expiryDate and cvv are required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		h.handleError(c, model.ErrInvalidAmount)
		return
	}

	cardNumber := digitsOnly(req.CardNumber, 16)
	expiry := normalizeExpiry(req.ExpiryDate)
	cvv := digitsOnly(req.CVV, 4)
	if len(cardNumber) < 12 || len(expiry) != 5 || len(cvv) < 3 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "card details are incomplete",
			Code:  "INVALID_CARD",
		})
		return
	}

	user := session.CurrentUser(c)
	if _, err := h.api.AddFunds(c.Request.Context(), &rentalapi.AddFundsRequest{
		UserID:     user.ID,
		Amount:     amount,
		CardNumber: cardNumber,
		ExpiryDate: expiry,
		CVV:        cvv,
	}); err != nil {
		h.handleError(c, err)
		return
	}

	// The top-up response carries a balance, but the refresh is what the
	// store trusts and fans out.
	balance, err := h.wallet.Refresh(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Warn().Err(err).Str("user_id", user.ID).Msg("post-top-up refresh failed")
		balance = h.wallet.Balance(user.ID)
	}
	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  user.ID,
		Balance: balance.StringFixed(2),
	})
}

// StreamBalance
// @Summary Stream balance changes
// @Description Server-sent events; one event per applied balance change
// @Tags wallet
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /wallet/stream [get]
func (h *Handler) StreamBalance(c *gin.Context) {
	user := session.CurrentUser(c)

	events := make(chan decimal.Decimal, 8)
	id := h.wallet.Subscribe(func(userID string, balance decimal.Decimal) {
		if userID != user.ID {
			return
		}
		select {
		case events <- balance:
		default:
			// Slow consumer; it will catch up on the next event.
		}
	})
	defer h.wallet.Unsubscribe(id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("balance", h.wallet.Balance(user.ID).StringFixed(2))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case balance := <-events:
			c.SSEvent("balance", balance.StringFixed(2))
			c.Writer.Flush()
		}
	}
}

// digitsOnly strips everything but digits and truncates to max, mirroring
// what the top-up form enforces while typing.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// normalizeExpiry reduces an expiry to MM/YY. Anything that does not contain
// four digits comes back shorter and fails the length check upstream.
func normalizeExpiry(s string) string {
	digits := digitsOnly(s, 4)
	if len(digits) < 4 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
