// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tillpoint/internal/delivery/http/middleware"
	"tillpoint/internal/delivery/http/router/handler"
	"tillpoint/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SaleHandler      *handler.SaleHandler
	PaymentHandler   *handler.PaymentHandler
	ShiftHandler     *handler.ShiftHandler
	LoyaltyHandler   *handler.LoyaltyHandler
	InventoryHandler *handler.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	saleHandler      *handler.SaleHandler
	paymentHandler   *handler.PaymentHandler
	shiftHandler     *handler.ShiftHandler
	loyaltyHandler   *handler.LoyaltyHandler
	inventoryHandler *handler.InventoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		saleHandler:      params.SaleHandler,
		paymentHandler:   params.PaymentHandler,
		shiftHandler:     params.ShiftHandler,
		loyaltyHandler:   params.LoyaltyHandler,
		inventoryHandler: params.InventoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Payment reconciliation routes stay public: the callback is hit by the
	// customer's browser, the webhook authenticates via its signature.
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.GET("/callback", r.paymentHandler.Callback)
		paymentGroup.POST("/webhook", r.paymentHandler.Webhook)
	}

	// Sale routes require authentication
	saleGroup := e.Group("/sales")
	saleGroup.Use(r.authMiddleware.Authenticate)
	{
		saleGroup.POST("", r.saleHandler.CreateSale)
		saleGroup.GET("/:id", r.saleHandler.GetSale)
	}

	// Shift routes require authentication
	shiftGroup := e.Group("/shifts")
	shiftGroup.Use(r.authMiddleware.Authenticate)
	{
		shiftGroup.POST("/clock-in", r.shiftHandler.ClockIn)
		shiftGroup.POST("/:id/clock-out", r.shiftHandler.ClockOut)
		shiftGroup.GET("/:id", r.shiftHandler.GetShift)
	}

	// Loyalty routes require authentication
	loyaltyGroup := e.Group("/loyalty")
	loyaltyGroup.Use(r.authMiddleware.Authenticate)
	{
		loyaltyGroup.POST("/earn", r.loyaltyHandler.EarnPoints)
		loyaltyGroup.POST("/redeem", r.loyaltyHandler.RedeemReward)
	}

	// Stock corrections are restricted to managers and admins
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	productGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleManager))
	{
		productGroup.POST("/:id/restock", r.inventoryHandler.Restock)
		productGroup.POST("/:id/adjust", r.inventoryHandler.AdjustStock)
	}
}
