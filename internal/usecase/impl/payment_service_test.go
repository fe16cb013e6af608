package impl

import (
	"context"
	"fmt"
	"testing"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/domain/service"
	mockRepo "tillpoint/internal/mocks/repository"
	mockSvc "tillpoint/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingSale(id uuid.UUID) *entity.Sale {
	return &entity.Sale{
		ID:     id,
		ShopID: uuid.New(),
		Status: entity.SaleStatusPending,
	}
}

func TestPaymentService_HandleCallback_SuccessfulVerification(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	ctx := context.Background()

	raw := []byte(`{"status":"success"}`)

	saleRepo.EXPECT().
		FindSaleByID(ctx, saleID).
		Return(pendingSale(saleID), nil)
	gateway.EXPECT().
		Verify(ctx, saleID.String()).
		Return(&service.ProviderTransaction{Reference: saleID.String(), Status: "success", Raw: raw}, nil)
	saleRepo.EXPECT().
		TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusCompleted, raw).
		Return(true, nil)

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	url := svc.HandleCallback(ctx, saleID.String())
	assert.Equal(t, fmt.Sprintf("https://pos.tillpoint.test/payment-success?payment=success&saleId=%s", saleID), url)
}

func TestPaymentService_HandleCallback_AlreadySettledStillRedirectsSuccess(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	ctx := context.Background()

	saleRepo.EXPECT().
		FindSaleByID(ctx, saleID).
		Return(pendingSale(saleID), nil)
	gateway.EXPECT().
		Verify(ctx, saleID.String()).
		Return(&service.ProviderTransaction{Reference: saleID.String(), Status: "success"}, nil)

	// The webhook settled the sale first; the conditional update matches no
	// row and the callback degrades to a no-op.
	saleRepo.EXPECT().
		TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusCompleted, []byte(nil)).
		Return(false, nil)

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	url := svc.HandleCallback(ctx, saleID.String())
	assert.Contains(t, url, "/payment-success")
}

func TestPaymentService_HandleCallback_FailedChargeMarksSaleFailed(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	ctx := context.Background()

	raw := []byte(`{"status":"failed"}`)

	saleRepo.EXPECT().
		FindSaleByID(ctx, saleID).
		Return(pendingSale(saleID), nil)
	gateway.EXPECT().
		Verify(ctx, saleID.String()).
		Return(&service.ProviderTransaction{Reference: saleID.String(), Status: "failed", Raw: raw}, nil)
	saleRepo.EXPECT().
		TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusFailed, raw).
		Return(true, nil)

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	url := svc.HandleCallback(ctx, saleID.String())
	assert.Equal(t, fmt.Sprintf("https://pos.tillpoint.test/payment-failed?payment=failed&saleId=%s", saleID), url)
}

func TestPaymentService_HandleCallback_VerificationOutageRedirectsError(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	ctx := context.Background()

	saleRepo.EXPECT().
		FindSaleByID(ctx, saleID).
		Return(pendingSale(saleID), nil)

	// Verification fails closed: an unreachable provider never completes a
	// sale.
	gateway.EXPECT().
		Verify(ctx, saleID.String()).
		Return(nil, errors.Wrap(service.ErrGatewayUnavailable, "timeout"))

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	url := svc.HandleCallback(ctx, saleID.String())
	assert.Contains(t, url, "/payment-error")
	assert.Contains(t, url, saleID.String())
}

func TestPaymentService_HandleCallback_MalformedReferenceRedirectsError(t *testing.T) {
	svc := NewPaymentService(
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	assert.Contains(t, svc.HandleCallback(context.Background(), ""), "/payment-error")
	assert.Contains(t, svc.HandleCallback(context.Background(), "not-a-uuid"), "/payment-error")
}

func TestPaymentService_HandleWebhook_InvalidSignatureRejected(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	body := []byte(`{"event":"charge.success"}`)

	gateway.EXPECT().
		VerifyWebhookSignature(body, "deadbeef").
		Return(false)

	svc := NewPaymentService(mockRepo.NewMockSaleRepository(t), gateway, newTestConfig(), newDiscardLogger())

	err := svc.HandleWebhook(context.Background(), body, "deadbeef")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SIGNATURE_INVALID", appErr.ErrorCode())
}

func TestPaymentService_HandleWebhook_MissingSignatureRejectedWithoutVerification(t *testing.T) {
	svc := NewPaymentService(
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	err := svc.HandleWebhook(context.Background(), []byte(`{}`), "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SIGNATURE_INVALID", appErr.ErrorCode())
}

func TestPaymentService_HandleWebhook_MalformedBodyRejected(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	body := []byte(`{not json`)

	gateway.EXPECT().
		VerifyWebhookSignature(body, "sig").
		Return(true)

	svc := NewPaymentService(mockRepo.NewMockSaleRepository(t), gateway, newTestConfig(), newDiscardLogger())

	err := svc.HandleWebhook(context.Background(), body, "sig")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestPaymentService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	body := []byte(`{"event":"transfer.success","data":{"reference":"abc"}}`)

	gateway.EXPECT().
		VerifyWebhookSignature(body, "sig").
		Return(true)

	svc := NewPaymentService(mockRepo.NewMockSaleRepository(t), gateway, newTestConfig(), newDiscardLogger())

	require.NoError(t, svc.HandleWebhook(context.Background(), body, "sig"))
}

func TestPaymentService_HandleWebhook_UnknownSaleAcknowledged(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	body := []byte(fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s","status":"success"}}`, saleID))

	gateway.EXPECT().
		VerifyWebhookSignature(body, "sig").
		Return(true)
	saleRepo.EXPECT().
		FindSaleByID(context.Background(), saleID).
		Return(nil, repository.ErrSaleNotFound)

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	// Acknowledged so the provider stops retrying a reference we will never
	// recognize.
	require.NoError(t, svc.HandleWebhook(context.Background(), body, "sig"))
}

func TestPaymentService_HandleWebhook_CompletesSaleIdempotently(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	saleID := uuid.New()
	ctx := context.Background()
	body := []byte(fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s","status":"success"}}`, saleID))

	gateway.EXPECT().
		VerifyWebhookSignature(body, "sig").
		Return(true).
		Twice()
	saleRepo.EXPECT().
		FindSaleByID(ctx, saleID).
		Return(pendingSale(saleID), nil).
		Twice()
	saleRepo.EXPECT().
		TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusCompleted, body).
		Return(true, nil).
		Once()
	saleRepo.EXPECT().
		TransitionStatus(ctx, saleID, entity.SaleStatusPending, entity.SaleStatusCompleted, body).
		Return(false, nil).
		Once()

	svc := NewPaymentService(saleRepo, gateway, newTestConfig(), newDiscardLogger())

	require.NoError(t, svc.HandleWebhook(ctx, body, "sig"))
	require.NoError(t, svc.HandleWebhook(ctx, body, "sig"))
}
