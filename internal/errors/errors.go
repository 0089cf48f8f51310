package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoAvailability is returned when no room of the requested type is free.
	ErrNoAvailability = errors.New("no rooms available for the selected dates")
	// ErrReservationAlreadyPaid is returned when paying an already paid reservation.
	ErrReservationAlreadyPaid = errors.New("reservation is already paid")
	// ErrPaymentNotCompleted is returned when refunding a payment that was not collected.
	ErrPaymentNotCompleted = errors.New("only completed payments can be refunded")
	// ErrRefundWindowExpired is returned when the refund window has passed.
	ErrRefundWindowExpired = errors.New("refund window has expired")
	// ErrIntentNotPayable is returned when an intent is expired or no longer pending.
	ErrIntentNotPayable = errors.New("reservation intent can no longer be paid")
	// ErrGatewayUnavailable wraps any failure talking to the payment gateway.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrIntentNotFound is returned when a reservation intent is not found.
	ErrIntentNotFound = errors.New("reservation intent not found")
	// ErrReservationNotFound is returned when a reservation is not found.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// GatewayError wraps ErrGatewayUnavailable with the underlying cause.
func GatewayError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrGatewayUnavailable, op, cause)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 without detail.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrNoAvailability):
		return NewHTTPError(http.StatusConflict, ErrNoAvailability.Error(), "NO_AVAILABILITY")
	case errors.Is(err, ErrReservationAlreadyPaid):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrReservationAlreadyPaid.Error(), "RESERVATION_ALREADY_PAID")
	case errors.Is(err, ErrPaymentNotCompleted):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrPaymentNotCompleted.Error(), "PAYMENT_NOT_COMPLETED")
	case errors.Is(err, ErrRefundWindowExpired):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrRefundWindowExpired.Error(), "REFUND_WINDOW_EXPIRED")
	case errors.Is(err, ErrIntentNotPayable):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrIntentNotPayable.Error(), "INTENT_NOT_PAYABLE")
	case errors.Is(err, ErrGatewayUnavailable):
		return NewHTTPError(http.StatusBadGateway, ErrGatewayUnavailable.Error(), "GATEWAY_UNAVAILABLE")
	case errors.Is(err, ErrPaymentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPaymentNotFound.Error(), "PAYMENT_NOT_FOUND")
	case errors.Is(err, ErrIntentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrIntentNotFound.Error(), "INTENT_NOT_FOUND")
	case errors.Is(err, ErrReservationNotFound):
		return NewHTTPError(http.StatusNotFound, ErrReservationNotFound.Error(), "RESERVATION_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
