package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hotelres/internal/errors"
	"hotelres/internal/model"
	"hotelres/internal/service"
)

// IntentHandler handles reservation intent endpoints.
type IntentHandler struct {
	intentService  service.IntentService
	paymentService service.PaymentService
	now            func() time.Time
}

// NewIntentHandler creates a new intent handler.
func NewIntentHandler(intentService service.IntentService, paymentService service.PaymentService) *IntentHandler {
	return &IntentHandler{
		intentService:  intentService,
		paymentService: paymentService,
		now:            time.Now,
	}
}

// CreateIntentRequest represents a booking request.
type CreateIntentRequest struct {
	HotelID  uint   `json:"hotel_id" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"`
}

// CheckoutResponse describes a started gateway checkout.
type CheckoutResponse struct {
	PaymentID   string              `json:"payment_id"`
	TxRef       string              `json:"tx_ref"`
	Status      model.PaymentStatus `json:"status"`
	CheckoutURL string              `json:"checkout_url,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    string              `json:"currency"`
}

func newCheckoutResponse(p *model.Payment) CheckoutResponse {
	return CheckoutResponse{
		PaymentID:   p.ID.String(),
		TxRef:       p.TxRef,
		Status:      p.Status,
		CheckoutURL: p.CheckoutURL,
		Amount:      p.Amount,
		Currency:    p.Currency,
	}
}

// CreateIntent godoc
// @Summary Create a reservation intent
// @Tags intents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIntentRequest true "Stay details"
// @Success 201 {object} model.ReservationIntent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /intents [post]
func (h *IntentHandler) CreateIntent(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return err
	}

	intent, err := h.intentService.CreateIntent(c.Request().Context(), service.CreateIntentInput{
		HotelID:  req.HotelID,
		RoomType: req.RoomType,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		UserID:   caller.UserID,
		Now:      h.now(),
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, intent)
}

// GetIntent godoc
// @Summary Get a reservation intent
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} model.ReservationIntent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /intents/{id} [get]
func (h *IntentHandler) GetIntent(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return serviceError(errors.ErrIntentNotFound)
	}

	intent, err := h.intentService.GetIntent(c.Request().Context(), id, caller)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, intent)
}

// InitiatePayment godoc
// @Summary Start a gateway checkout for an intent
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 201 {object} CheckoutResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /intents/{id}/payments [post]
func (h *IntentHandler) InitiatePayment(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return serviceError(errors.ErrIntentNotFound)
	}

	payment, err := h.paymentService.InitiateIntentPayment(c.Request().Context(), id, caller, h.now())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, newCheckoutResponse(payment))
}
