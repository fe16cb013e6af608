// Package handler contains the HTTP request handlers.
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

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler holds dependencies for sale-related handlers
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// CreateSale handles checkout: it validates the cart, commits the sale and
// stock movements, and for non-cash methods returns the provider
// authorization data alongside the sale.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	var req usecase.CreateSaleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.saleUC.CreateSale(c.Request().Context(), scope, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Sale created successfully")
}

// GetSale retrieves a sale with its items.
func (h *SaleHandler) GetSale(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid access scope in token")
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	sale, err := h.saleUC.GetSale(c.Request().Context(), scope, saleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale, "")
}
