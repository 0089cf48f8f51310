package model

import (
	"time"

	"gorm.io/gorm"
)

// Hotel is a tenant of the booking system. The catalog is read-only to the
// reservation core.
type Hotel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null;index"`
	City      string         `json:"city" gorm:"size:120"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}
