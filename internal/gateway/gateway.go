// Package gateway talks to the external payment provider.
package gateway

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Customer identifies the payer towards the gateway.
type Customer struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// InitiateRequest starts a hosted checkout.
type InitiateRequest struct {
	TxRef       string
	Amount      decimal.Decimal
	Currency    string
	Customer    Customer
	CallbackURL string
	ReturnURL   string
}

// InitiateResult is the gateway acknowledgement of a checkout.
type InitiateResult struct {
	CheckoutURL string
	TxRef       string
	Status      string
	RawPayload  json.RawMessage
}

// VerifyResult is the authoritative gateway view of a transaction.
type VerifyResult struct {
	TxRef         string
	GatewayStatus string
	RawPayload    json.RawMessage
}

// RefundResult is the gateway acknowledgement of a refund.
type RefundResult struct {
	TxRef      string
	Status     string
	RawPayload json.RawMessage
}

// Gateway is a payment provider. Every failure is reported as an error
// wrapping errors.ErrGatewayUnavailable; calls are never retried.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	Verify(ctx context.Context, txRef string) (*VerifyResult, error)
	Refund(ctx context.Context, txRef, reason string) (*RefundResult, error)
}
