package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// ActiveReservationStatuses are the statuses that hold a room.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
}

// IsActive reports whether a reservation in this status blocks its room.
func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveReservationStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// ReservationPaymentStatus is derived from the reservation's payments.
type ReservationPaymentStatus string

const (
	ReservationPaymentPending  ReservationPaymentStatus = "pending"
	ReservationPaymentPaid     ReservationPaymentStatus = "paid"
	ReservationPaymentFailed   ReservationPaymentStatus = "failed"
	ReservationPaymentRefunded ReservationPaymentStatus = "refunded"
)

// Reservation is a committed booking of a specific room.
type Reservation struct {
	ID            uuid.UUID                `json:"id" gorm:"type:char(36);primaryKey"`
	RoomID        uint                     `json:"room_id" gorm:"not null;index"`
	UserID        uint                     `json:"user_id" gorm:"not null;index"`
	CheckIn       time.Time                `json:"check_in" gorm:"type:date;not null;index"`
	CheckOut      time.Time                `json:"check_out" gorm:"type:date;not null;index"`
	Status        ReservationStatus        `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus ReservationPaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount   decimal.Decimal          `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	DeletedAt     gorm.DeletedAt           `json:"-" gorm:"index"`

	Room Room `json:"-" gorm:"foreignKey:RoomID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
