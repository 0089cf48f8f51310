package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomStatus is the housekeeping state of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusUnavailable RoomStatus = "unavailable"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room is a bookable unit of a hotel. Only rooms in RoomStatusAvailable are
// considered by availability queries.
type Room struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	HotelID   uint            `json:"hotel_id" gorm:"not null;index:idx_room_hotel_type"`
	Number    string          `json:"number" gorm:"size:20;not null"`
	Type      string          `json:"type" gorm:"size:60;not null;index:idx_room_hotel_type"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Status    RoomStatus      `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	Capacity  int             `json:"capacity" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`

	Hotel Hotel `json:"-" gorm:"foreignKey:HotelID"`
}

// BeforeSave enforces the capacity invariant.
func (r *Room) BeforeSave(tx *gorm.DB) error {
	if r.Capacity < 1 {
		return errors.New("room capacity must be at least 1")
	}
	return nil
}
