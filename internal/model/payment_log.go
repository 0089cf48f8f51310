package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentEventSource identifies which entry point touched a payment.
type PaymentEventSource string

const (
	PaymentSourceInitiate PaymentEventSource = "initiate"
	PaymentSourceWebhook  PaymentEventSource = "webhook"
	PaymentSourceVerify   PaymentEventSource = "verify"
	PaymentSourceRefund   PaymentEventSource = "refund"
)

// PaymentLog is an audit entry for a payment state change or no-op.
// Entries are written asynchronously and are not part of any transaction.
type PaymentLog struct {
	ID         uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	PaymentID  uuid.UUID          `json:"payment_id" gorm:"type:char(36);not null;index"`
	TxRef      string             `json:"tx_ref" gorm:"column:transaction_reference;size:64;index"`
	Source     PaymentEventSource `json:"source" gorm:"type:varchar(20);not null"`
	FromStatus PaymentStatus      `json:"from_status" gorm:"type:varchar(20)"`
	ToStatus   PaymentStatus      `json:"to_status" gorm:"type:varchar(20);not null;index"`
	Message    string             `json:"message,omitempty" gorm:"type:text"`
	CreatedAt  time.Time          `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (pl *PaymentLog) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == uuid.Nil {
		pl.ID = uuid.New()
	}
	return nil
}
