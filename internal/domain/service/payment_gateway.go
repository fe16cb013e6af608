// Package service defines interfaces to external collaborators of the
// transaction engine.
package service

import (
	"context"

	"tillpoint/internal/errors"
)

// ErrGatewayUnavailable is returned for network failures, timeouts and
// provider-side rejections. The adapter always fails closed: an outbound call
// that cannot be confirmed is a failure, never a silent success.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// InitializeResult is the provider's response to a payment initialization.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// ProviderTransaction is the provider's view of a transaction, returned by
// verification. Raw carries the provider payload verbatim for audit storage.
type ProviderTransaction struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	// Amount in the smallest currency unit.
	Amount int64  `json:"amount"`
	Raw    []byte `json:"-"`
}

// Succeeded reports whether the provider considers the charge successful.
func (t *ProviderTransaction) Succeeded() bool {
	return t.Status == "success"
}

// PaymentGateway is the boundary to the external payment provider. All
// amounts cross this boundary in the smallest currency unit; the gateway
// performs no currency conversion.
type PaymentGateway interface {
	// Initialize starts a two-phase payment and returns the authorization
	// data the customer uses to complete it. Reference is the sale ID.
	Initialize(ctx context.Context, email string, amountMinor int64, reference, callbackURL string, metadata map[string]string) (*InitializeResult, error)

	// Verify fetches the provider's final view of a transaction by reference.
	Verify(ctx context.Context, reference string) (*ProviderTransaction, error)

	// VerifyWebhookSignature checks a webhook's keyed HMAC over the raw
	// request body using constant-time comparison.
	VerifyWebhookSignature(rawBody []byte, signature string) bool
}
