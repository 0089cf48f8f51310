package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that take part in a single unit of work.
type Store interface {
	Users() UserRepository
	Hotels() HotelRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Intents() IntentRepository
	Payments() PaymentRepository
	PaymentLogs() PaymentLogRepository

	// WithTransaction runs fn inside a database transaction. The Store passed
	// to fn is bound to the transaction; returning an error rolls back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository               { return NewUserRepository(s.db) }
func (s *gormStore) Hotels() HotelRepository             { return NewHotelRepository(s.db) }
func (s *gormStore) Rooms() RoomRepository               { return NewRoomRepository(s.db) }
func (s *gormStore) Reservations() ReservationRepository { return NewReservationRepository(s.db) }
func (s *gormStore) Intents() IntentRepository           { return NewIntentRepository(s.db) }
func (s *gormStore) Payments() PaymentRepository         { return NewPaymentRepository(s.db) }
func (s *gormStore) PaymentLogs() PaymentLogRepository   { return NewPaymentLogRepository(s.db) }

// WithTransaction executes a function within a database transaction.
func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormStore{db: tx})
	})
}
