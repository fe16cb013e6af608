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

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for stock ledger handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// Restock records a purchase movement for a product.
func (h *InventoryHandler) Restock(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req usecase.RestockInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.inventoryUC.Restock(c.Request().Context(), scope, productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product restocked successfully")
}

// AdjustStock records a manual stock correction for a product.
func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req usecase.AdjustStockInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.inventoryUC.AdjustStock(c.Request().Context(), scope, productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Stock adjusted successfully")
}
