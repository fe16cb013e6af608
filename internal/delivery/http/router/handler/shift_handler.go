package handler

import (
	"log/slog"
	"net/http"

	"tillpoint/internal/delivery/http/middleware"
	"tillpoint/internal/delivery/http/response"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShiftHandlerParams holds dependencies for ShiftHandler, injected by Fx.
type ShiftHandlerParams struct {
	fx.In

	ShiftUC usecase.ShiftUsecase
	Logger  *slog.Logger
}

// ShiftHandler holds dependencies for shift-related handlers
type ShiftHandler struct {
	shiftUC usecase.ShiftUsecase
	logger  *slog.Logger
}

// NewShiftHandler is the constructor for ShiftHandler
func NewShiftHandler(params ShiftHandlerParams) *ShiftHandler {
	return &ShiftHandler{
		shiftUC: params.ShiftUC,
		logger:  params.Logger,
	}
}

// ClockIn opens a shift for the authenticated cashier.
func (h *ShiftHandler) ClockIn(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	var req usecase.ClockInInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clock-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shift, err := h.shiftUC.ClockIn(c.Request().Context(), scope, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shift, "Shift opened successfully")
}

// ClockOut closes a shift and returns the frozen reconciliation summary.
func (h *ShiftHandler) ClockOut(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shift ID")
	}

	var req usecase.CloseShiftInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clock-out input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shift, err := h.shiftUC.CloseShift(c.Request().Context(), scope, shiftID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shift, "Shift closed successfully")
}

// GetShift retrieves a shift.
func (h *ShiftHandler) GetShift(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shift ID")
	}

	shift, err := h.shiftUC.GetShift(c.Request().Context(), scope, shiftID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shift, "")
}
