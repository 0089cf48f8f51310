package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"go.uber.org/zap"

	"hotelres/internal/cache"
	"hotelres/internal/errors"
	"hotelres/internal/metrics"
	"hotelres/internal/model"
	"hotelres/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	// MaxCalendarHorizon bounds calendar queries.
	MaxCalendarHorizon = 366
)

// AvailabilityService answers which rooms and dates are bookable.
type AvailabilityService interface {
	FindFreeRooms(ctx context.Context, hotelID uint, roomType string, checkIn, checkOut time.Time) ([]model.Room, error)
	DisabledCheckInDates(ctx context.Context, hotelID uint, roomType string, from time.Time, horizonDays int) ([]time.Time, error)
	DisabledCheckOutDates(ctx context.Context, hotelID uint, roomType string, checkIn time.Time, horizonDays int) ([]time.Time, error)
}

type availabilityService struct {
	store    repository.Store
	cache    *cache.Client
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAvailabilityService creates an availability service. Calendar results
// are cached for cacheTTL; a zero TTL or nil cache disables caching.
func NewAvailabilityService(store repository.Store, c *cache.Client, cacheTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &availabilityService{store: store, cache: c, cacheTTL: cacheTTL, metrics: m, logger: logger}
}

// Overlaps reports whether two stays conflict. Both ends are inclusive, so a
// stay ending on the day another begins is a conflict.
func Overlaps(existingIn, existingOut, requestedIn, requestedOut time.Time) bool {
	return !existingIn.After(requestedOut) && !existingOut.Before(requestedIn)
}

// FreeRooms returns the rooms not blocked by any active reservation over
// [checkIn, checkOut]. Input order is preserved.
func FreeRooms(rooms []model.Room, reservations []model.Reservation, checkIn, checkOut time.Time) []model.Room {
	blocked := make(map[uint]bool)
	for _, r := range reservations {
		if !r.Status.IsActive() {
			continue
		}
		if Overlaps(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			blocked[r.RoomID] = true
		}
	}

	free := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status != model.RoomStatusAvailable || blocked[room.ID] {
			continue
		}
		free = append(free, room)
	}
	return free
}

// DayOf truncates t to the start of its UTC calendar day.
func DayOf(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfDay()
}

// LocalDay returns the calendar day t falls on in loc, keyed like DayOf.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *availabilityService) FindFreeRooms(ctx context.Context, hotelID uint, roomType string, checkIn, checkOut time.Time) ([]model.Room, error) {
	if roomType == "" {
		return nil, errors.NewValidationError("room_type", "is required")
	}
	checkIn, checkOut = DayOf(checkIn), DayOf(checkOut)
	if !checkOut.After(checkIn) {
		return nil, errors.NewValidationError("check_out", "must be after check_in")
	}
	s.metrics.RecordAvailabilityQuery("rooms")

	rooms, err := findFreeRooms(ctx, s.store, hotelID, roomType, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *availabilityService) DisabledCheckInDates(ctx context.Context, hotelID uint, roomType string, from time.Time, horizonDays int) ([]time.Time, error) {
	if err := validateCalendarQuery(roomType, horizonDays); err != nil {
		return nil, err
	}
	from = DayOf(from)
	s.metrics.RecordAvailabilityQuery("calendar_check_in")

	key := fmt.Sprintf("calendar:check_in:%d:%s:%s:%d", hotelID, roomType, from.Format(dateLayout), horizonDays)
	return s.cachedCalendar(ctx, key, func() ([]time.Time, error) {
		last := from.AddDate(0, 0, horizonDays)
		rooms, reservations, err := loadCandidates(ctx, s.store, hotelID, roomType, from, last)
		if err != nil {
			return nil, err
		}

		disabled := make([]time.Time, 0)
		for i := 0; i < horizonDays; i++ {
			day := from.AddDate(0, 0, i)
			if len(FreeRooms(rooms, reservations, day, day.AddDate(0, 0, 1))) == 0 {
				disabled = append(disabled, day)
			}
		}
		return disabled, nil
	})
}

func (s *availabilityService) DisabledCheckOutDates(ctx context.Context, hotelID uint, roomType string, checkIn time.Time, horizonDays int) ([]time.Time, error) {
	if err := validateCalendarQuery(roomType, horizonDays); err != nil {
		return nil, err
	}
	checkIn = DayOf(checkIn)
	s.metrics.RecordAvailabilityQuery("calendar_check_out")

	key := fmt.Sprintf("calendar:check_out:%d:%s:%s:%d", hotelID, roomType, checkIn.Format(dateLayout), horizonDays)
	return s.cachedCalendar(ctx, key, func() ([]time.Time, error) {
		last := checkIn.AddDate(0, 0, horizonDays)
		rooms, reservations, err := loadCandidates(ctx, s.store, hotelID, roomType, checkIn, last)
		if err != nil {
			return nil, err
		}

		disabled := make([]time.Time, 0)
		for i := 1; i <= horizonDays; i++ {
			day := checkIn.AddDate(0, 0, i)
			if len(FreeRooms(rooms, reservations, checkIn, day)) == 0 {
				disabled = append(disabled, day)
			}
		}
		return disabled, nil
	})
}

func (s *availabilityService) cachedCalendar(ctx context.Context, key string, compute func() ([]time.Time, error)) ([]time.Time, error) {
	var cached []string
	if s.cacheTTL > 0 && s.cache.GetJSON(ctx, key, &cached) {
		days := make([]time.Time, 0, len(cached))
		for _, d := range cached {
			parsed, err := time.Parse(dateLayout, d)
			if err != nil {
				s.logger.Warn("discarding malformed calendar cache entry", zap.String("key", key))
				days = nil
				break
			}
			days = append(days, parsed)
		}
		if days != nil {
			return days, nil
		}
	}

	days, err := compute()
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		encoded := make([]string, len(days))
		for i, d := range days {
			encoded[i] = d.Format(dateLayout)
		}
		s.cache.SetJSON(ctx, key, encoded, s.cacheTTL)
	}
	return days, nil
}

func validateCalendarQuery(roomType string, horizonDays int) error {
	if roomType == "" {
		return errors.NewValidationError("room_type", "is required")
	}
	if horizonDays < 1 || horizonDays > MaxCalendarHorizon {
		return errors.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", MaxCalendarHorizon))
	}
	return nil
}

// loadCandidates fetches the bookable rooms of a type and every active
// reservation of those rooms touching [from, to].
func loadCandidates(ctx context.Context, store repository.Store, hotelID uint, roomType string, from, to time.Time) ([]model.Room, []model.Reservation, error) {
	rooms, err := store.Rooms().ListByHotelType(ctx, hotelID, roomType, model.RoomStatusAvailable)
	if err != nil {
		return nil, nil, fmt.Errorf("list rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, nil, nil
	}

	ids := make([]uint, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	reservations, err := store.Reservations().ListActiveOverlapping(ctx, ids, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("list reservations: %w", err)
	}
	return rooms, reservations, nil
}

func findFreeRooms(ctx context.Context, store repository.Store, hotelID uint, roomType string, checkIn, checkOut time.Time) ([]model.Room, error) {
	rooms, reservations, err := loadCandidates(ctx, store, hotelID, roomType, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return FreeRooms(rooms, reservations, checkIn, checkOut), nil
}
