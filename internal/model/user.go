package model

import "time"

// Role is a user's role within the hotel system.
type Role string

const (
	RoleSuperAdmin   Role = "superadmin"
	RoleHotelAdmin   Role = "hotel_admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleCustomer     Role = "customer"
)

// IsStaff reports whether the role operates on behalf of a hotel.
func (r Role) IsStaff() bool {
	switch r {
	case RoleSuperAdmin, RoleHotelAdmin, RoleManager, RoleReceptionist:
		return true
	default:
		return false
	}
}

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:20"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:30;not null;default:'customer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
