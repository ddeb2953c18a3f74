package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"servicehub/config"
	"servicehub/infras/otel"
	"servicehub/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	pathInitiate = "/epayment/initiate/"
	pathLookup   = "/epayment/lookup/"

	authorizationScheme = "Key "
	maxErrorBodyBytes   = 4096
)

// Lookup statuses reported by the gateway.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusExpired   = "Expired"
)

var ErrNotConfigured = errors.New("payment gateway is not configured")

// Error is a non-2xx gateway response. Detail carries the gateway's own explanation.
type Error struct {
	StatusCode int
	Detail     string
	ErrorKey   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway responded %d: %s", e.StatusCode, e.Detail)
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Product struct {
	Identity   string `json:"identity"`
	Name       string `json:"name"`
	TotalPrice int64  `json:"total_price"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
}

// InitiateRequest amounts are integer minor units.
type InitiateRequest struct {
	AmountMinor       int64
	PurchaseOrderID   string
	PurchaseOrderName string
	Customer          Customer
	ProductDetails    []Product
}

type initiatePayload struct {
	ReturnURL         string    `json:"return_url"`
	WebsiteURL        string    `json:"website_url"`
	Amount            int64     `json:"amount"`
	PurchaseOrderID   string    `json:"purchase_order_id"`
	PurchaseOrderName string    `json:"purchase_order_name"`
	CustomerInfo      Customer  `json:"customer_info"`
	ProductDetails    []Product `json:"product_details,omitempty"`
}

type InitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at"`
	ExpiresIn  int    `json:"expires_in"`
}

type lookupPayload struct {
	Pidx string `json:"pidx"`
}

type LookupResponse struct {
	Pidx          string  `json:"pidx"`
	TotalAmount   int64   `json:"total_amount"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id"`
	Fee           int64   `json:"fee"`
	Refunded      bool    `json:"refunded"`
}

type errorPayload struct {
	Detail   string `json:"detail"`
	ErrorKey string `json:"error_key"`
}

// Gateway is the external payment processor. Calls are never retried here.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (InitiateResponse, error)
	Lookup(ctx context.Context, pidx string) (LookupResponse, error)
}

type gatewayImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	return &gatewayImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Payment.Gateway.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

func (g *gatewayImpl) Initiate(ctx context.Context, req InitiateRequest) (res InitiateResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Initiate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("gateway.purchase_order_id", req.PurchaseOrderID)

	payload := initiatePayload{
		ReturnURL:         g.cfg.Payment.Gateway.ReturnURL,
		WebsiteURL:        g.cfg.Payment.Gateway.WebsiteURL,
		Amount:            req.AmountMinor,
		PurchaseOrderID:   req.PurchaseOrderID,
		PurchaseOrderName: req.PurchaseOrderName,
		CustomerInfo:      req.Customer,
		ProductDetails:    req.ProductDetails,
	}

	if err = g.post(ctx, pathInitiate, payload, &res); err != nil {
		return res, err
	}

	if res.Pidx == constant.Empty {
		return res, &Error{StatusCode: http.StatusBadGateway, Detail: "gateway returned no payment reference"}
	}

	return res, nil
}

func (g *gatewayImpl) Lookup(ctx context.Context, pidx string) (res LookupResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("gateway.pidx", pidx)

	err = g.post(ctx, pathLookup, lookupPayload{Pidx: pidx}, &res)

	return res, err
}

func (g *gatewayImpl) post(ctx context.Context, path string, payload, out any) error {
	if g.cfg.Payment.Gateway.BaseURL == constant.Empty || g.cfg.Payment.Gateway.SecretKey == constant.Empty {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	url := strings.TrimRight(g.cfg.Payment.Gateway.BaseURL, "/") + path

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAuthorization, authorizationScheme+g.cfg.Payment.Gateway.SecretKey)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := g.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("gateway request failed")

		return fmt.Errorf("failed to call gateway: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		gatewayErr := decodeError(response)
		log.Warn().Int("status", gatewayErr.StatusCode).Str("path", path).Str("detail", gatewayErr.Detail).Msg("gateway rejected request")

		return gatewayErr
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode gateway response")

		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}

func decodeError(response *http.Response) *Error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))

	gatewayErr := &Error{StatusCode: response.StatusCode}

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != constant.Empty {
		gatewayErr.Detail = payload.Detail
		gatewayErr.ErrorKey = payload.ErrorKey

		return gatewayErr
	}

	gatewayErr.Detail = strings.TrimSpace(string(raw))
	if gatewayErr.Detail == constant.Empty {
		gatewayErr.Detail = http.StatusText(response.StatusCode)
	}

	return gatewayErr
}
