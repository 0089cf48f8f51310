package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"hotelres/internal/errors"
	"hotelres/internal/model"
)

// gatewayStatusTable maps lower-cased gateway status strings to internal
// payment statuses. Unlisted strings leave the payment where it is.
var gatewayStatusTable = map[string]model.PaymentStatus{
	"success":    model.PaymentStatusCompleted,
	"successful": model.PaymentStatusCompleted,
	"completed":  model.PaymentStatusCompleted,
	"paid":       model.PaymentStatusCompleted,
	"failed":     model.PaymentStatusFailed,
	"cancelled":  model.PaymentStatusFailed,
}

// MapGatewayStatus maps a gateway status string to a terminal payment status.
// ok is false when the string is not recognised.
func MapGatewayStatus(gatewayStatus string) (status model.PaymentStatus, ok bool) {
	status, ok = gatewayStatusTable[strings.ToLower(strings.TrimSpace(gatewayStatus))]
	return status, ok
}

// RecomputePaymentStatus derives a reservation's payment status from its
// payments. It is a pure function of its inputs.
func RecomputePaymentStatus(reservation *model.Reservation, payments []model.Payment) model.ReservationPaymentStatus {
	collected := decimal.Zero
	anyRefunded := false
	allFailed := len(payments) > 0

	for _, p := range payments {
		if p.Status.IsCompleted() {
			collected = collected.Add(p.Amount)
		}
		if p.Status == model.PaymentStatusRefunded {
			anyRefunded = true
		}
		if p.Status != model.PaymentStatusFailed {
			allFailed = false
		}
	}

	switch {
	case collected.IsPositive() && collected.GreaterThanOrEqual(reservation.TotalAmount):
		return model.ReservationPaymentPaid
	case anyRefunded:
		return model.ReservationPaymentRefunded
	case allFailed:
		return model.ReservationPaymentFailed
	default:
		return model.ReservationPaymentPending
	}
}

// AssertNotAlreadyPaid rejects new payments for a fully paid reservation.
func AssertNotAlreadyPaid(reservation *model.Reservation) error {
	if reservation.PaymentStatus == model.ReservationPaymentPaid {
		return errors.ErrReservationAlreadyPaid
	}
	return nil
}
