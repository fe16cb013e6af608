package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tillpoint/config"
	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/domain/service"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type paymentService struct {
	saleRepo repository.SaleRepository
	gateway  service.PaymentGateway
	cfg      *config.Config
	logger   *slog.Logger
}

// NewPaymentService creates the payment reconciliation service.
func NewPaymentService(
	saleRepo repository.SaleRepository,
	gateway service.PaymentGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		saleRepo: saleRepo,
		gateway:  gateway,
		cfg:      cfg,
		logger:   logger,
	}
}

// HandleCallback verifies a returning customer's payment with the provider
// and settles the sale. It always returns a frontend redirect URL: the
// customer is standing at a browser, so every outcome ends in a redirect
// rather than an error page.
func (s *paymentService) HandleCallback(ctx context.Context, reference string) string {
	if reference == "" {
		s.logger.Warn("payment callback without reference")

		return s.redirectURL("error", "")
	}

	saleID, err := uuid.Parse(reference)
	if err != nil {
		s.logger.Warn("payment callback with malformed reference", slog.String("reference", reference))

		return s.redirectURL("error", "")
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		s.logger.Warn("payment callback for unknown sale",
			slog.String("reference", reference),
			slog.Any("error", err),
		)

		return s.redirectURL("error", "")
	}

	providerTx, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		s.logger.Error("payment verification failed",
			slog.String("sale_id", sale.ID.String()),
			slog.Any("error", err),
		)

		return s.redirectURL("error", sale.ID.String())
	}

	if !providerTx.Succeeded() {
		s.logger.Warn("payment not successful at provider",
			slog.String("sale_id", sale.ID.String()),
			slog.String("provider_status", providerTx.Status),
		)
		if _, err := s.saleRepo.TransitionStatus(ctx, sale.ID, entity.SaleStatusPending, entity.SaleStatusFailed, providerTx.Raw); err != nil {
			s.logger.Error("failed to mark sale failed",
				slog.String("sale_id", sale.ID.String()),
				slog.Any("error", err),
			)
		}

		return s.redirectURL("failed", sale.ID.String())
	}

	applied, err := s.saleRepo.TransitionStatus(ctx, sale.ID, entity.SaleStatusPending, entity.SaleStatusCompleted, providerTx.Raw)
	if err != nil {
		s.logger.Error("failed to complete sale after verification",
			slog.String("sale_id", sale.ID.String()),
			slog.Any("error", err),
		)

		return s.redirectURL("error", sale.ID.String())
	}
	if !applied {
		// Webhook got here first. The customer still sees success.
		s.logger.Info("sale already settled, callback is a no-op", slog.String("sale_id", sale.ID.String()))
	}

	return s.redirectURL("success", sale.ID.String())
}

// webhookEvent is the subset of the provider's event payload that
// reconciliation needs.
type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

// HandleWebhook settles a sale from a provider push. The signature check is
// the only authentication on this path, so it runs before the body is even
// parsed. Events for unknown sales and statuses other than charge.success are
// acknowledged without action so the provider stops retrying.
func (s *paymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if signature == "" || !s.gateway.VerifyWebhookSignature(rawBody, signature) {
		return domainerrors.ErrSignatureInvalid
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return domainerrors.ErrValidation.WithDetails("malformed webhook payload")
	}

	if event.Event != "charge.success" {
		s.logger.Debug("ignoring webhook event", slog.String("event", event.Event))

		return nil
	}

	saleID, err := uuid.Parse(event.Data.Reference)
	if err != nil {
		s.logger.Warn("webhook with malformed reference", slog.String("reference", event.Data.Reference))

		return nil
	}

	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			s.logger.Warn("webhook for unknown sale", slog.String("sale_id", saleID.String()))

			return nil
		}

		return errors.Wrap(err, "failed to find sale for webhook")
	}

	applied, err := s.saleRepo.TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusCompleted, rawBody)
	if err != nil {
		return errors.Wrap(err, "failed to complete sale from webhook")
	}
	if !applied {
		s.logger.Info("sale already settled, webhook is a no-op", slog.String("sale_id", saleID.String()))
	}

	return nil
}

func (s *paymentService) redirectURL(status, saleID string) string {
	base := s.cfg.Frontend.BaseURL
	switch status {
	case "success":
		return fmt.Sprintf("%s/payment-success?payment=success&saleId=%s", base, saleID)
	case "failed":
		return fmt.Sprintf("%s/payment-failed?payment=failed&saleId=%s", base, saleID)
	default:
		return fmt.Sprintf("%s/payment-error?payment=error&saleId=%s", base, saleID)
	}
}
