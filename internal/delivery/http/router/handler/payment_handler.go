package handler

import (
	"io"
	"log/slog"
	"net/http"

	"tillpoint/internal/delivery/http/response"
	"tillpoint/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// paystackSignatureHeader carries the HMAC-SHA512 hex digest of the raw
// webhook body.
const paystackSignatureHeader = "X-Paystack-Signature"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment reconciliation handlers.
// Both endpoints skip token authentication: the callback is hit by a
// customer's browser returning from the provider, the webhook by the provider
// itself, which authenticates through its signature.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// Callback handles the customer's synchronous return from the provider and
// always redirects to the frontend, whatever the verification outcome.
func (h *PaymentHandler) Callback(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		// Paystack also sends trxref with the same value.
		reference = c.QueryParam("trxref")
	}

	redirectURL := h.paymentUC.HandleCallback(c.Request().Context(), reference)

	return c.Redirect(http.StatusFound, redirectURL)
}

// Webhook handles asynchronous provider notifications. The body is read raw
// because the signature covers the exact bytes sent.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	signature := c.Request().Header.Get(paystackSignatureHeader)

	if err := h.paymentUC.HandleWebhook(c.Request().Context(), rawBody, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed")
}
