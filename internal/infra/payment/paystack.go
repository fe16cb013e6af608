// Package payment contains the payment provider adapters.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"tillpoint/config"
	"tillpoint/internal/domain/service"

	"github.com/pkg/errors"
)

// paystackGateway implements the domain PaymentGateway against the Paystack
// HTTP API. Every call fails closed: a response that cannot be confirmed is
// an error, never a silent success.
type paystackGateway struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	client        *http.Client
	logger        *slog.Logger
}

// NewPaystackGateway creates the Paystack adapter. The HTTP client timeout
// comes from configuration and bounds both initialization and verification.
func NewPaystackGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &paystackGateway{
		baseURL:       cfg.Paystack.BaseURL,
		secretKey:     cfg.Paystack.SecretKey,
		webhookSecret: cfg.Paystack.WebhookSecret,
		client:        &http.Client{Timeout: cfg.Paystack.Timeout},
		logger:        logger,
	}
}

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Initialize starts a two-phase payment. Amount is already in the smallest
// currency unit; the reference is the sale ID so the provider's view and ours
// share a key.
func (g *paystackGateway) Initialize(ctx context.Context, email string, amountMinor int64, reference, callbackURL string, metadata map[string]string) (*service.InitializeResult, error) {
	payload := initializeRequest{
		Email:       email,
		Amount:      amountMinor,
		Reference:   reference,
		CallbackURL: callbackURL,
		Metadata:    metadata,
	}

	var resp initializeResponse
	if err := g.post(ctx, "/transaction/initialize", payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "provider rejected initialization: %s", resp.Message)
	}

	return &service.InitializeResult{
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        resp.Data.Reference,
	}, nil
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// Verify fetches the provider's final view of a transaction by reference.
func (g *paystackGateway) Verify(ctx context.Context, reference string) (*service.ProviderTransaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build verify request")
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, "failed to read verify response")
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "verify returned HTTP %d", httpResp.StatusCode)
	}

	var resp verifyResponse
	if err := json.Unmarshal(rawBody, &resp); err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, "failed to decode verify response")
	}
	if !resp.Status {
		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "provider rejected verification: %s", resp.Message)
	}

	return &service.ProviderTransaction{
		Reference: resp.Data.Reference,
		Status:    resp.Data.Status,
		Amount:    resp.Data.Amount,
		Raw:       rawBody,
	}, nil
}

// VerifyWebhookSignature checks the HMAC-SHA512 hex signature Paystack sends
// in X-Paystack-Signature over the raw request body. Comparison is constant
// time.
func (g *paystackGateway) VerifyWebhookSignature(rawBody []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(g.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *paystackGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return errors.Wrap(service.ErrGatewayUnavailable, "failed to read response")
	}
	if httpResp.StatusCode != http.StatusOK {
		g.logger.Warn("paystack request failed",
			slog.String("path", path),
			slog.Int("status", httpResp.StatusCode),
		)

		return errors.Wrapf(service.ErrGatewayUnavailable, "provider returned HTTP %d", httpResp.StatusCode)
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return errors.Wrap(service.ErrGatewayUnavailable, "failed to decode response")
	}

	return nil
}
