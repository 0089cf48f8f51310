package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IntentStatus represents the state of a reservation intent.
type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusConfirmed IntentStatus = "confirmed"
	IntentStatusFailed    IntentStatus = "failed"
	IntentStatusExpired   IntentStatus = "expired"
)

// IntentTTL is how long an intent stays payable after creation.
const IntentTTL = 24 * time.Hour

// ReservationIntent is a provisional booking for a room type awaiting payment.
// It references a room type, not a room: no room is held until the booking
// is confirmed.
type ReservationIntent struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	HotelID       uint            `json:"hotel_id" gorm:"not null;index"`
	RoomType      string          `json:"room_type" gorm:"size:60;not null"`
	CheckIn       time.Time       `json:"check_in" gorm:"type:date;not null"`
	CheckOut      time.Time       `json:"check_out" gorm:"type:date;not null"`
	Guests        int             `json:"guests" gorm:"not null;default:1"`
	Nights        int             `json:"nights" gorm:"not null"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Currency      string          `json:"currency" gorm:"size:3;not null"`
	Status        IntentStatus    `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt     time.Time       `json:"expires_at" gorm:"not null;index"`
	ReservationID *uuid.UUID      `json:"reservation_id,omitempty" gorm:"type:char(36)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (i *ReservationIntent) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// IsPayable reports whether a payment may still be started for the intent.
func (i *ReservationIntent) IsPayable(now time.Time) bool {
	return i.Status == IntentStatusPending && now.Before(i.ExpiresAt)
}
