package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelres/internal/auth"
	"hotelres/internal/errors"
	"hotelres/internal/metrics"
	"hotelres/internal/model"
	"hotelres/internal/repository"
)

// CreateIntentInput carries a booking request. Now is the request time.
type CreateIntentInput struct {
	HotelID  uint
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	UserID   uint
	Now      time.Time
}

// IntentService creates and reads reservation intents.
type IntentService interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*model.ReservationIntent, error)
	GetIntent(ctx context.Context, id uuid.UUID, caller auth.Identity) (*model.ReservationIntent, error)
}

type intentService struct {
	store    repository.Store
	validate *validator.Validate
	currency string
	location *time.Location
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewIntentService creates an intent service pricing in currency. loc is the
// hotel's time zone; nil means UTC.
func NewIntentService(store repository.Store, currency string, loc *time.Location, m *metrics.Metrics, logger *zap.Logger) IntentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &intentService{
		store:    store,
		validate: validator.New(),
		currency: currency,
		location: loc,
		metrics:  m,
		logger:   logger,
	}
}

// Nights returns the number of nights between two days, at least 1.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(DayOf(checkOut).Sub(DayOf(checkIn)).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// CreateIntent validates a booking request, re-checks availability and
// records a pending intent priced from the lowest-id free room. No room is
// held by the intent.
func (s *intentService) CreateIntent(ctx context.Context, in CreateIntentInput) (*model.ReservationIntent, error) {
	if err := s.validateInput(ctx, in); err != nil {
		s.metrics.RecordIntent("invalid")
		return nil, err
	}

	checkIn, checkOut := DayOf(in.CheckIn), DayOf(in.CheckOut)
	var intent *model.ReservationIntent

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		free, err := findFreeRooms(ctx, tx, in.HotelID, in.RoomType, checkIn, checkOut)
		if err != nil {
			return err
		}
		if len(free) == 0 {
			return errors.ErrNoAvailability
		}

		nights := Nights(checkIn, checkOut)
		intent = &model.ReservationIntent{
			UserID:      in.UserID,
			HotelID:     in.HotelID,
			RoomType:    in.RoomType,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Guests:      in.Guests,
			Nights:      nights,
			TotalAmount: free[0].Price.Mul(decimal.NewFromInt(int64(nights))),
			Currency:    s.currency,
			Status:      model.IntentStatusPending,
			ExpiresAt:   in.Now.Add(model.IntentTTL),
		}
		if err := tx.Intents().Create(ctx, intent); err != nil {
			return fmt.Errorf("create intent: %w", err)
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrNoAvailability) {
			s.metrics.RecordIntent("no_availability")
		} else {
			s.metrics.RecordIntent("error")
		}
		return nil, err
	}

	s.metrics.RecordIntent("created")
	s.logger.Info("reservation intent created",
		zap.String("intent_id", intent.ID.String()),
		zap.Uint("user_id", intent.UserID),
		zap.Uint("hotel_id", intent.HotelID),
		zap.String("room_type", intent.RoomType),
		zap.String("total", intent.TotalAmount.StringFixed(2)),
	)
	return intent, nil
}

func (s *intentService) validateInput(ctx context.Context, in CreateIntentInput) error {
	if strings.TrimSpace(in.RoomType) == "" {
		return errors.NewValidationError("room_type", "is required")
	}
	if in.Guests < 1 {
		return errors.NewValidationError("guests", "must be at least 1")
	}
	checkIn, checkOut := DayOf(in.CheckIn), DayOf(in.CheckOut)
	if !checkIn.After(LocalDay(in.Now, s.location)) {
		return errors.NewValidationError("check_in", "must be after today")
	}
	if !checkOut.After(checkIn) {
		return errors.NewValidationError("check_out", "must be after check_in")
	}

	user, err := s.store.Users().FindByID(ctx, in.UserID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.validate.Var(user.Phone, "required,e164"); err != nil {
		return errors.NewValidationError("phone", "a valid international phone number (E.164) is required to book")
	}
	return nil
}

// GetIntent returns an intent visible to the caller. Intents of other users
// are reported as not found unless the caller is staff.
func (s *intentService) GetIntent(ctx context.Context, id uuid.UUID, caller auth.Identity) (*model.ReservationIntent, error) {
	intent, err := s.store.Intents().FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrIntentNotFound
		}
		return nil, fmt.Errorf("find intent: %w", err)
	}
	if !caller.CanActOnBehalfOf(intent.UserID) {
		return nil, errors.ErrIntentNotFound
	}
	return intent, nil
}
