package usecase

import "context"

// PaymentUsecase reconciles pending sales against the payment provider. The
// two entry points converge on the same monotone status transition and are
// both safe to retry.
type PaymentUsecase interface {
	// HandleCallback processes the synchronous return path: it verifies the
	// referenced transaction with the provider and advances the sale. It
	// always returns a frontend URL to redirect the customer to; failures
	// degrade to an error redirect, never a handler error.
	HandleCallback(ctx context.Context, reference string) string

	// HandleWebhook processes the asynchronous provider webhook. The raw
	// body and signature header are verified before any parsing; invalid
	// signatures and unparsable bodies are rejected with no state change.
	// Recognized charge success events complete the sale idempotently;
	// unknown event types are accepted and ignored.
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
}
