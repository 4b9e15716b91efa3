package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/config"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

const paymentLinkStatusPaid = "paid"

// PaymentService creates PayMongo payment links for orders and verifies their
// settlement.
type PaymentService struct {
	orders  repository.OrderRepository
	client  *http.Client
	baseURL string
	auth    string
	logger  *zap.Logger
}

// NewPaymentService builds the service. The gateway authenticates requests
// with HTTP basic auth where the secret key is the user and the password is
// empty.
func NewPaymentService(cfg config.PaymentConfig, orders repository.OrderRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		orders:  orders,
		client:  &http.Client{Timeout: cfg.Timeout()},
		baseURL: cfg.BaseURL,
		auth:    "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.SecretKey+":")),
		logger:  logger,
	}
}

// PaymentLink is the caller-facing view of a created link.
type PaymentLink struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type linkEnvelope struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Amount      int64  `json:"amount"`
			Description string `json:"description"`
			Remarks     string `json:"remarks"`
			CheckoutURL string `json:"checkout_url"`
			Status      string `json:"status"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateLink requests a payment link for the order's total and stores the
// link id on the order. The gateway takes amounts in centavos.
func (s *PaymentService) CreateLink(ctx context.Context, orderID int64) (*PaymentLink, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"data": map[string]any{
			"attributes": map[string]any{
				"amount":      int64(math.Round(order.TotalPrice * 100)),
				"description": order.Description,
				"remarks":     order.Remarks,
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/links", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.auth)

	envelope, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if err := s.orders.SetPaymentLink(ctx, orderID, envelope.Data.ID); err != nil {
		return nil, err
	}

	s.logger.Info("payment link created",
		zap.Int64("order_id", orderID), zap.String("link_id", envelope.Data.ID))
	return &PaymentLink{
		ID:          envelope.Data.ID,
		CheckoutURL: envelope.Data.Attributes.CheckoutURL,
		Status:      envelope.Data.Attributes.Status,
	}, nil
}

// Verify re-fetches the order's link and marks the order paid once the
// gateway reports settlement. Orders without a link cannot be verified.
func (s *PaymentService) Verify(ctx context.Context, orderID int64) (*PaymentLink, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentLinkID == nil {
		return nil, apperrors.NewValidationError("order has no payment link", nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/links/"+*order.PaymentLinkID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", s.auth)

	envelope, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if envelope.Data.Attributes.Status == paymentLinkStatusPaid && order.PaymentStatus != domain.PaymentStatusPaid {
		if err := s.orders.SetPaymentStatus(ctx, orderID, domain.PaymentStatusPaid); err != nil {
			return nil, err
		}
		s.logger.Info("order payment settled", zap.Int64("order_id", orderID))
	}

	return &PaymentLink{
		ID:          envelope.Data.ID,
		CheckoutURL: envelope.Data.Attributes.CheckoutURL,
		Status:      envelope.Data.Attributes.Status,
	}, nil
}

func (s *PaymentService) do(req *http.Request) (*linkEnvelope, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("payment gateway unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamError(
			fmt.Sprintf("payment gateway returned status %d", resp.StatusCode), nil)
	}

	var envelope linkEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.NewUpstreamError("payment gateway returned malformed response", err)
	}
	return &envelope, nil
}
