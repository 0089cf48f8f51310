package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotelres/internal/errors"
	"hotelres/internal/model"
	"hotelres/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	now            func() time.Time
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, now: time.Now}
}

// VerifyRequest asks the gateway for the authoritative status of a payment.
type VerifyRequest struct {
	TxRef string `json:"tx_ref" validate:"required"`
}

// VerifyResponse carries the local status after verification.
type VerifyResponse struct {
	TxRef  string              `json:"tx_ref"`
	Status model.PaymentStatus `json:"status"`
}

// RefundRequest represents a refund request. The reason is optional.
type RefundRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

// InitiateReservationPayment godoc
// @Summary Start a gateway checkout for an existing reservation
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 201 {object} CheckoutResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /reservations/{id}/payments [post]
func (h *PaymentHandler) InitiateReservationPayment(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return serviceError(errors.ErrReservationNotFound)
	}

	payment, err := h.paymentService.InitiateReservationPayment(c.Request().Context(), id, caller, h.now())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, newCheckoutResponse(payment))
}

// Verify godoc
// @Summary Verify a payment with the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyRequest true "Transaction reference"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}

	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	status, err := h.paymentService.ApplyVerify(c.Request().Context(), req.TxRef, h.now())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, VerifyResponse{TxRef: req.TxRef, Status: status})
}

// Refund godoc
// @Summary Refund a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body RefundRequest false "Refund reason"
// @Success 200 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return serviceError(errors.ErrPaymentNotFound)
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	payment, err := h.paymentService.ApplyRefund(c.Request().Context(), service.RefundInput{
		PaymentID: id,
		Reason:    req.Reason,
		Actor:     caller,
		Now:       h.now(),
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

// Status godoc
// @Summary Poll the status of a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param tx_ref path string true "Transaction reference"
// @Success 200 {object} service.PaymentStatusView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{tx_ref}/status [get]
func (h *PaymentHandler) Status(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	view, err := h.paymentService.PaymentStatus(c.Request().Context(), c.Param("tx_ref"), caller)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, view)
}
