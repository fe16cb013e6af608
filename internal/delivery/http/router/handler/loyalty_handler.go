package handler

import (
	"log/slog"
	"net/http"

	"tillpoint/internal/delivery/http/middleware"
	"tillpoint/internal/delivery/http/response"
	"tillpoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// LoyaltyHandler holds dependencies for loyalty-related handlers
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// EarnPoints accrues points for a completed purchase.
func (h *LoyaltyHandler) EarnPoints(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	var req usecase.AwardPointsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accrual input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.loyaltyUC.AwardPoints(c.Request().Context(), scope, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Points awarded successfully")
}

// RedeemReward redeems points for a reward and returns the granted discount.
func (h *LoyaltyHandler) RedeemReward(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	var req usecase.RedeemRewardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.loyaltyUC.RedeemReward(c.Request().Context(), scope, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Reward redeemed successfully")
}
