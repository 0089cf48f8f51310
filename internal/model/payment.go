package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusPaid is a legacy alias of PaymentStatusCompleted still
	// present on older rows.
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsOpen reports whether gateway outcomes may still change the status.
func (s PaymentStatus) IsOpen() bool {
	return s == PaymentStatusInitiated || s == PaymentStatusPending
}

// IsCompleted reports whether the payment has been collected.
func (s PaymentStatus) IsCompleted() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusPaid
}

// PaymentMethod is the channel used to collect a payment.
type PaymentMethod string

const (
	PaymentMethodChapa        PaymentMethod = "chapa"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodTelebirr     PaymentMethod = "telebirr"
)

// OwnerKind tags which entity a payment belongs to.
type OwnerKind string

const (
	OwnerReservation OwnerKind = "reservation"
	OwnerIntent      OwnerKind = "intent"
)

// PaymentOwner is either a Reservation or a ReservationIntent, never both.
type PaymentOwner struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// ReservationOwner returns the owner value for a reservation.
func ReservationOwner(id uuid.UUID) PaymentOwner {
	return PaymentOwner{Kind: OwnerReservation, ID: id}
}

// IntentOwner returns the owner value for a reservation intent.
func IntentOwner(id uuid.UUID) PaymentOwner {
	return PaymentOwner{Kind: OwnerIntent, ID: id}
}

// Valid reports whether the owner is fully specified.
func (o PaymentOwner) Valid() bool {
	return (o.Kind == OwnerReservation || o.Kind == OwnerIntent) && o.ID != uuid.Nil
}

// ErrInvalidPaymentOwner is returned when a payment is saved without an owner.
var ErrInvalidPaymentOwner = errors.New("payment must belong to exactly one reservation or intent")

// Payment is one attempt to collect money through the gateway.
type Payment struct {
	ID            uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerType     OwnerKind         `json:"owner_type" gorm:"type:varchar(20);not null;index:idx_payment_owner"`
	OwnerID       uuid.UUID         `json:"owner_id" gorm:"type:char(36);not null;index:idx_payment_owner"`
	Amount        decimal.Decimal   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency      string            `json:"currency" gorm:"size:3;not null"`
	Method        PaymentMethod     `json:"method" gorm:"type:varchar(20);not null;default:'chapa'"`
	Status        PaymentStatus     `json:"status" gorm:"type:varchar(20);not null;default:'initiated';index"`
	TxRef         string            `json:"tx_ref" gorm:"column:transaction_reference;size:64;not null;uniqueIndex"`
	CheckoutURL   string            `json:"checkout_url,omitempty" gorm:"size:512"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	RefundedAt    *time.Time        `json:"refunded_at,omitempty"`
	Meta          datatypes.JSONMap `json:"meta,omitempty" gorm:"type:json"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `json:"-" gorm:"index"`
}

// NewPayment builds an initiated payment for the given owner.
func NewPayment(owner PaymentOwner, amount decimal.Decimal, currency string, method PaymentMethod, txRef string) *Payment {
	return &Payment{
		OwnerType: owner.Kind,
		OwnerID:   owner.ID,
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		Status:    PaymentStatusInitiated,
		TxRef:     txRef,
		Meta:      datatypes.JSONMap{},
	}
}

// Owner returns the tagged owner of the payment.
func (p *Payment) Owner() PaymentOwner {
	return PaymentOwner{Kind: p.OwnerType, ID: p.OwnerID}
}

// AppendMeta appends entry to the list stored under key. Existing keys and
// entries are never replaced.
func (p *Payment) AppendMeta(key string, entry map[string]interface{}) {
	if p.Meta == nil {
		p.Meta = datatypes.JSONMap{}
	}
	var list []interface{}
	if existing, ok := p.Meta[key].([]interface{}); ok {
		list = make([]interface{}, len(existing), len(existing)+1)
		copy(list, existing)
	}
	p.Meta[key] = append(list, entry)
}

// SetMetaOnce stores value under key unless the key is already present.
func (p *Payment) SetMetaOnce(key string, value interface{}) {
	if p.Meta == nil {
		p.Meta = datatypes.JSONMap{}
	}
	if _, exists := p.Meta[key]; exists {
		return
	}
	p.Meta[key] = value
}

// BeforeCreate sets UUID and enforces the single-owner invariant.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if !p.Owner().Valid() {
		return ErrInvalidPaymentOwner
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
