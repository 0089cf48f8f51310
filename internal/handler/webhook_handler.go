package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotelres/internal/service"
)

const maxWebhookBody = 1 << 20

// WebhookHandler receives gateway notifications.
type WebhookHandler struct {
	paymentService service.PaymentService
	logger         *zap.Logger
	now            func() time.Time
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(paymentService service.PaymentService, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{paymentService: paymentService, logger: logger, now: time.Now}
}

// WebhookResponse acknowledges a delivery.
type WebhookResponse struct {
	Received bool `json:"received"`
}

// Receive godoc
// @Summary Receive a gateway webhook
// @Description Always answers 200 so the gateway does not retry; unknown or malformed deliveries are dropped.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse
// @Router /payments/webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		h.logger.Warn("webhook body unreadable", zap.Error(err))
		return c.JSON(http.StatusOK, WebhookResponse{Received: true})
	}
	return h.apply(c, body)
}

// Callback godoc
// @Summary Receive a gateway redirect callback
// @Description Query parameters are treated as the webhook payload.
// @Tags webhooks
// @Produce json
// @Param trx_ref query string false "Transaction reference"
// @Param status query string false "Gateway status"
// @Success 200 {object} WebhookResponse
// @Router /payments/webhook [get]
func (h *WebhookHandler) Callback(c echo.Context) error {
	payload := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return c.JSON(http.StatusOK, WebhookResponse{Received: true})
	}
	return h.apply(c, body)
}

func (h *WebhookHandler) apply(c echo.Context, body []byte) error {
	outcome, err := h.paymentService.ApplyWebhook(c.Request().Context(), body, c.Request().Header, h.now())
	if err != nil {
		h.logger.Error("webhook processing failed", zap.Error(err))
	} else {
		h.logger.Debug("webhook processed", zap.String("outcome", string(outcome)))
	}
	return c.JSON(http.StatusOK, WebhookResponse{Received: true})
}
