package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelres/internal/errors"
	"hotelres/internal/model"
	"hotelres/internal/repository"
)

// SeedData is the fixture document loaded by the seeder.
type SeedData struct {
	Hotels []SeedHotel `json:"hotels"`
	Users  []SeedUser  `json:"users"`
}

// SeedHotel is a hotel with its rooms.
type SeedHotel struct {
	Name  string     `json:"name"`
	City  string     `json:"city"`
	Rooms []SeedRoom `json:"rooms"`
}

// SeedRoom is a room keyed by its number within the hotel.
type SeedRoom struct {
	Number   string           `json:"number"`
	Type     string           `json:"type"`
	Price    string           `json:"price"`
	Capacity int              `json:"capacity"`
	Status   model.RoomStatus `json:"status"`
}

// SeedUser is a user keyed by email.
type SeedUser struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// SeedResult counts what a seed run changed.
type SeedResult struct {
	Created int
	Updated int
}

// Seed upserts hotels by name, rooms by hotel and number, and users by email
// in a single transaction.
func Seed(ctx context.Context, store repository.Store, data SeedData) (SeedResult, error) {
	var result SeedResult
	err := store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		result = SeedResult{}
		for _, h := range data.Hotels {
			if err := seedHotel(ctx, tx, h, &result); err != nil {
				return err
			}
		}
		for _, u := range data.Users {
			if err := seedUser(ctx, tx, u, &result); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

func seedHotel(ctx context.Context, tx repository.Store, in SeedHotel, result *SeedResult) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return errors.NewValidationError("hotel.name", "is required")
	}

	hotel, err := tx.Hotels().FindByName(ctx, name)
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		hotel = &model.Hotel{Name: name, City: in.City}
		if err := tx.Hotels().Create(ctx, hotel); err != nil {
			return fmt.Errorf("create hotel %q: %w", name, err)
		}
		result.Created++
	case err != nil:
		return fmt.Errorf("find hotel %q: %w", name, err)
	default:
		hotel.City = in.City
		if err := tx.Hotels().Update(ctx, hotel); err != nil {
			return fmt.Errorf("update hotel %q: %w", name, err)
		}
		result.Updated++
	}

	for _, r := range in.Rooms {
		if err := seedRoom(ctx, tx, hotel.ID, r, result); err != nil {
			return fmt.Errorf("hotel %q: %w", name, err)
		}
	}
	return nil
}

func seedRoom(ctx context.Context, tx repository.Store, hotelID uint, in SeedRoom, result *SeedResult) error {
	if in.Number == "" || in.Type == "" {
		return errors.NewValidationError("room", "number and type are required")
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || !price.IsPositive() {
		return errors.NewValidationError("room.price", fmt.Sprintf("room %s has invalid price %q", in.Number, in.Price))
	}
	status := in.Status
	if status == "" {
		status = model.RoomStatusAvailable
	}
	capacity := in.Capacity
	if capacity == 0 {
		capacity = 1
	}

	room, err := tx.Rooms().FindByNumber(ctx, hotelID, in.Number)
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		room = &model.Room{HotelID: hotelID, Number: in.Number}
		applyRoom(room, in.Type, price, status, capacity)
		if err := tx.Rooms().Create(ctx, room); err != nil {
			return fmt.Errorf("create room %s: %w", in.Number, err)
		}
		result.Created++
	case err != nil:
		return fmt.Errorf("find room %s: %w", in.Number, err)
	default:
		applyRoom(room, in.Type, price, status, capacity)
		if err := tx.Rooms().Update(ctx, room); err != nil {
			return fmt.Errorf("update room %s: %w", in.Number, err)
		}
		result.Updated++
	}
	return nil
}

func applyRoom(room *model.Room, roomType string, price decimal.Decimal, status model.RoomStatus, capacity int) {
	room.Type = roomType
	room.Price = price
	room.Status = status
	room.Capacity = capacity
}

func seedUser(ctx context.Context, tx repository.Store, in SeedUser, result *SeedResult) error {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return errors.NewValidationError("user", "email and password are required")
	}
	role := in.Role
	if role == "" {
		role = model.RoleCustomer
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return err
	}

	user, err := tx.Users().FindByEmail(ctx, email)
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		user = &model.User{Name: in.Name, Email: email, Phone: in.Phone, PasswordHash: hashed, Role: role}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", email, err)
		}
		result.Created++
	case err != nil:
		return fmt.Errorf("find user %s: %w", email, err)
	default:
		user.Name = in.Name
		user.Phone = in.Phone
		user.PasswordHash = hashed
		user.Role = role
		if err := tx.Users().Update(ctx, user); err != nil {
			return fmt.Errorf("update user %s: %w", email, err)
		}
		result.Updated++
	}
	return nil
}
