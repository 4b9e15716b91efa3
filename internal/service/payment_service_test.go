package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/config"
	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

func paymentTestConfig(baseURL string) config.PaymentConfig {
	return config.PaymentConfig{SecretKey: "sk_test_abc", BaseURL: baseURL, TimeoutSeconds: 2}
}

func seedOrder(t *testing.T, orders *fakeOrderRepo, total float64) *domain.Order {
	t.Helper()
	order := &domain.Order{
		CustomerID:    1,
		PaymentStatus: domain.PaymentStatusPending,
		TotalPrice:    total,
		Description:   "A Great Way to Spend Money to your Pets!",
		Remarks:       "Shop Again!",
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return order
}

func TestCreateLinkSendsCentavosWithBasicAuth(t *testing.T) {
	orders := newFakeOrderRepo()
	order := seedOrder(t, orders, 451.5)

	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/links", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"link_123","attributes":{"checkout_url":"https://pay.example/l/123","status":"unpaid"}}}`))
	}))
	defer server.Close()

	svc := NewPaymentService(paymentTestConfig(server.URL), orders, zap.NewNop())
	link, err := svc.CreateLink(context.Background(), order.ID)
	require.NoError(t, err)

	expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("sk_test_abc:"))
	assert.Equal(t, expectedAuth, gotAuth)

	attrs := gotBody["data"].(map[string]any)["attributes"].(map[string]any)
	assert.EqualValues(t, 45150, attrs["amount"])
	assert.Equal(t, "A Great Way to Spend Money to your Pets!", attrs["description"])
	assert.Equal(t, "Shop Again!", attrs["remarks"])

	assert.Equal(t, "link_123", link.ID)
	assert.Equal(t, "https://pay.example/l/123", link.CheckoutURL)

	stored, err := orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentLinkID)
	assert.Equal(t, "link_123", *stored.PaymentLinkID)
}

func TestVerifyMarksOrderPaid(t *testing.T) {
	orders := newFakeOrderRepo()
	order := seedOrder(t, orders, 100)
	require.NoError(t, orders.SetPaymentLink(context.Background(), order.ID, "link_9"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/links/link_9", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"link_9","attributes":{"checkout_url":"https://pay.example/l/9","status":"paid"}}}`))
	}))
	defer server.Close()

	svc := NewPaymentService(paymentTestConfig(server.URL), orders, zap.NewNop())
	link, err := svc.Verify(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", link.Status)

	stored, err := orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
}

func TestVerifyLeavesUnpaidOrderPending(t *testing.T) {
	orders := newFakeOrderRepo()
	order := seedOrder(t, orders, 100)
	require.NoError(t, orders.SetPaymentLink(context.Background(), order.ID, "link_9"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"link_9","attributes":{"status":"unpaid"}}}`))
	}))
	defer server.Close()

	svc := NewPaymentService(paymentTestConfig(server.URL), orders, zap.NewNop())
	link, err := svc.Verify(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "unpaid", link.Status)

	stored, err := orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.PaymentStatus)
}

func TestVerifyWithoutLinkFails(t *testing.T) {
	orders := newFakeOrderRepo()
	order := seedOrder(t, orders, 100)

	svc := NewPaymentService(paymentTestConfig("http://127.0.0.1:0"), orders, zap.NewNop())
	_, err := svc.Verify(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCreateLinkSurfacesGatewayFailure(t *testing.T) {
	orders := newFakeOrderRepo()
	order := seedOrder(t, orders, 100)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewPaymentService(paymentTestConfig(server.URL), orders, zap.NewNop())
	_, err := svc.CreateLink(context.Background(), order.ID)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_ERROR", domainErr.Code)
	assert.Equal(t, 502, domainErr.HTTPStatus)
}
