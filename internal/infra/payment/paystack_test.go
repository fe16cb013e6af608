package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tillpoint/config"
	"tillpoint/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(baseURL string) service.PaymentGateway {
	return NewPaystackGateway(&config.Config{
		Paystack: &config.PaystackConfig{
			BaseURL:       baseURL,
			SecretKey:     "sk_test_secret",
			WebhookSecret: "whsec_test",
			Timeout:       2 * time.Second,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPaystackGateway_Initialize_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "ref-001"
			}
		}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	result, err := gateway.Initialize(context.Background(), "customer@example.com", 750, "ref-001", "https://api.example.com/callback", map[string]string{"sale_id": "s-1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "customer@example.com", gotBody["email"])
	assert.Equal(t, float64(750), gotBody["amount"])
	assert.Equal(t, "ref-001", gotBody["reference"])
	assert.Equal(t, "https://api.example.com/callback", gotBody["callback_url"])

	assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
	assert.Equal(t, "abc123", result.AccessCode)
	assert.Equal(t, "ref-001", result.Reference)
}

func TestPaystackGateway_Initialize_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid email address"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.Initialize(context.Background(), "bad", 100, "ref-002", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGatewayUnavailable))
	assert.Contains(t, err.Error(), "Invalid email address")
}

func TestPaystackGateway_Initialize_HTTPErrorFailsClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.Initialize(context.Background(), "customer@example.com", 100, "ref-003", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGatewayUnavailable))
}

func TestPaystackGateway_Initialize_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	gateway := newTestGateway(server.URL)

	_, err := gateway.Initialize(context.Background(), "customer@example.com", 100, "ref-004", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGatewayUnavailable))
}

func TestPaystackGateway_Verify_Success(t *testing.T) {
	body := `{
		"status": true,
		"message": "Verification successful",
		"data": {"reference": "ref-005", "status": "success", "amount": 1250}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/transaction/verify/ref-005", r.URL.Path)
		require.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	tx, err := gateway.Verify(context.Background(), "ref-005")
	require.NoError(t, err)
	assert.Equal(t, "ref-005", tx.Reference)
	assert.Equal(t, "success", tx.Status)
	assert.Equal(t, int64(1250), tx.Amount)
	assert.True(t, tx.Succeeded())
	// The raw provider payload is preserved verbatim for audit storage.
	assert.JSONEq(t, body, string(tx.Raw))
}

func TestPaystackGateway_Verify_FailedCharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {"reference": "ref-006", "status": "failed", "amount": 500}
		}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	tx, err := gateway.Verify(context.Background(), "ref-006")
	require.NoError(t, err)
	assert.False(t, tx.Succeeded())
}

func TestPaystackGateway_Verify_UnknownReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.Verify(context.Background(), "ref-007")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGatewayUnavailable))
}

func TestPaystackGateway_VerifyWebhookSignature(t *testing.T) {
	gateway := newTestGateway("http://unused")
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-008"}}`)

	mac := hmac.New(sha512.New, []byte("whsec_test"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, gateway.VerifyWebhookSignature(body, valid))
	assert.False(t, gateway.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, gateway.VerifyWebhookSignature(body, ""))
	assert.False(t, gateway.VerifyWebhookSignature([]byte(`{"tampered":true}`), valid))
}
