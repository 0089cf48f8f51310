package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelres/internal/model"
)

// HotelRepository defines hotel catalog operations.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	FindByID(ctx context.Context, id uint) (*model.Hotel, error)
	FindByName(ctx context.Context, name string) (*model.Hotel, error)
	Update(ctx context.Context, hotel *model.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a new hotel repository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindByName(ctx context.Context, name string) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

// RoomRepository defines room persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	FindByNumber(ctx context.Context, hotelID uint, number string) (*model.Room, error)
	// ListByHotelType returns rooms of a hotel and type in the given status,
	// ordered by id.
	ListByHotelType(ctx context.Context, hotelID uint, roomType string, status model.RoomStatus) ([]model.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) FindByNumber(ctx context.Context, hotelID uint, number string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Where("hotel_id = ? AND number = ?", hotelID, number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) ListByHotelType(ctx context.Context, hotelID uint, roomType string, status model.RoomStatus) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND type = ? AND status = ?", hotelID, roomType, status).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	Update(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	// ListActiveOverlapping returns active reservations of the given rooms that
	// touch the closed window [from, to].
	ListActiveOverlapping(ctx context.Context, roomIDs []uint, from, to time.Time) ([]model.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) Update(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindByIDForUpdate finds a reservation by ID with a row-level lock.
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListActiveOverlapping(ctx context.Context, roomIDs []uint, from, to time.Time) ([]model.Reservation, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	var reservations []model.Reservation
	if err := r.db.WithContext(ctx).
		Where("room_id IN ?", roomIDs).
		Where("status IN ?", model.ActiveReservationStatuses).
		Where("check_in <= ? AND check_out >= ?", to, from).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// IntentRepository defines reservation intent persistence operations.
type IntentRepository interface {
	Create(ctx context.Context, intent *model.ReservationIntent) error
	Update(ctx context.Context, intent *model.ReservationIntent) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error)
}

type intentRepository struct {
	db *gorm.DB
}

// NewIntentRepository creates a new intent repository.
func NewIntentRepository(db *gorm.DB) IntentRepository {
	return &intentRepository{db: db}
}

func (r *intentRepository) Create(ctx context.Context, intent *model.ReservationIntent) error {
	return r.db.WithContext(ctx).Create(intent).Error
}

func (r *intentRepository) Update(ctx context.Context, intent *model.ReservationIntent) error {
	return r.db.WithContext(ctx).Save(intent).Error
}

func (r *intentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error) {
	var intent model.ReservationIntent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&intent).Error; err != nil {
		return nil, err
	}
	return &intent, nil
}

// FindByIDForUpdate finds an intent by ID with a row-level lock.
func (r *intentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error) {
	var intent model.ReservationIntent
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&intent).Error; err != nil {
		return nil, err
	}
	return &intent, nil
}
