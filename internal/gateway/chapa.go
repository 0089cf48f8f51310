package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"hotelres/internal/config"
	apperrors "hotelres/internal/errors"
	"hotelres/internal/metrics"
)

const maxResponseBytes = 1 << 20

// ChapaClient is a Gateway backed by the Chapa REST API.
type ChapaClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[any]
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

var _ Gateway = (*ChapaClient)(nil)

// NewChapaClient creates a Chapa client. A nil logger or metrics is allowed.
func NewChapaClient(cfg config.ChapaConfig, m *metrics.Metrics, logger *zap.Logger) *ChapaClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "chapa",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("gateway circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &ChapaClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker[any](settings),
		metrics:    m,
		logger:     logger,
	}
}

type chapaEnvelope struct {
	Message json.RawMessage `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

type chapaInitializeRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url,omitempty"`
	ReturnURL   string `json:"return_url,omitempty"`
}

type chapaCheckoutData struct {
	CheckoutURL string `json:"checkout_url"`
}

type chapaVerifyData struct {
	Status string `json:"status"`
	TxRef  string `json:"tx_ref"`
}

// Initiate creates a hosted checkout session.
func (c *ChapaClient) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	body := chapaInitializeRequest{
		Amount:      req.Amount.StringFixed(2),
		Currency:    req.Currency,
		Email:       req.Customer.Email,
		FirstName:   req.Customer.FirstName,
		LastName:    req.Customer.LastName,
		PhoneNumber: req.Customer.Phone,
		TxRef:       req.TxRef,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
	}

	env, raw, err := c.do(ctx, "initiate", http.MethodPost, "/v1/transaction/initialize", body)
	if err != nil {
		return nil, err
	}

	var data chapaCheckoutData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, apperrors.GatewayError("initiate", fmt.Errorf("decode data: %w", err))
		}
	}
	if data.CheckoutURL == "" {
		return nil, apperrors.GatewayError("initiate", fmt.Errorf("response has no checkout_url"))
	}

	return &InitiateResult{
		CheckoutURL: data.CheckoutURL,
		TxRef:       req.TxRef,
		Status:      env.Status,
		RawPayload:  raw,
	}, nil
}

// Verify fetches the authoritative transaction status.
func (c *ChapaClient) Verify(ctx context.Context, txRef string) (*VerifyResult, error) {
	env, raw, err := c.do(ctx, "verify", http.MethodGet, "/v1/transaction/verify/"+url.PathEscape(txRef), nil)
	if err != nil {
		return nil, err
	}

	var data chapaVerifyData
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, apperrors.GatewayError("verify", fmt.Errorf("decode data: %w", err))
		}
	}

	return &VerifyResult{
		TxRef:         txRef,
		GatewayStatus: data.Status,
		RawPayload:    raw,
	}, nil
}

// Refund asks the gateway to return the money of a completed transaction.
func (c *ChapaClient) Refund(ctx context.Context, txRef, reason string) (*RefundResult, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	env, raw, err := c.do(ctx, "refund", http.MethodPost, "/v1/refund/"+url.PathEscape(txRef), body)
	if err != nil {
		return nil, err
	}
	return &RefundResult{TxRef: txRef, Status: env.Status, RawPayload: raw}, nil
}

// do performs one request through the circuit breaker. Any failure is
// returned wrapped in ErrGatewayUnavailable.
func (c *ChapaClient) do(ctx context.Context, op, method, path string, payload interface{}) (*chapaEnvelope, json.RawMessage, error) {
	start := time.Now()

	result, err := c.breaker.Execute(func() (any, error) {
		return c.send(ctx, method, path, payload)
	})
	c.metrics.RecordGatewayCall(op, err, time.Since(start))
	if err != nil {
		c.logger.Error("gateway request failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, nil, apperrors.GatewayError(op, err)
	}

	raw := result.(json.RawMessage)
	var env chapaEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, apperrors.GatewayError(op, fmt.Errorf("decode response: %w", err))
	}
	return &env, raw, nil
}

func (c *ChapaClient) send(ctx context.Context, method, path string, payload interface{}) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(respBody), 256))
	}
	return json.RawMessage(respBody), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
