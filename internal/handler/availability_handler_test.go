package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelres/internal/errors"
	"hotelres/internal/model"
)

func newAvailabilityHandler(svc *MockAvailabilityService) *AvailabilityHandler {
	h := NewAvailabilityHandler(svc, nil)
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	checkIn := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	rooms := []model.Room{{ID: 3, HotelID: 1, Number: "101", Type: "deluxe", Price: decimal.NewFromInt(100), Status: model.RoomStatusAvailable}}
	svc.On("FindFreeRooms", mock.Anything, uint(1), "deluxe", checkIn, checkOut).Return(rooms, nil)

	c, rec := newContext(http.MethodGet, "/api/hotels/1/availability?room_type=deluxe&check_in=2025-03-12&check_out=2025-03-14", "", nil)
	withParams(c, "hotelID", "1")

	require.NoError(t, h.GetAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-12", resp.CheckIn)
	assert.Equal(t, "2025-03-14", resp.CheckOut)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, uint(3), resp.Rooms[0].ID)
	svc.AssertExpectations(t)
}

func TestAvailabilityHandler_GetAvailability_EmptyListIsArray(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)
	svc.On("FindFreeRooms", mock.Anything, uint(1), "suite", mock.Anything, mock.Anything).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/api/hotels/1/availability?room_type=suite&check_in=2025-03-12&check_out=2025-03-14", "", nil)
	withParams(c, "hotelID", "1")

	require.NoError(t, h.GetAvailability(c))
	assert.Contains(t, rec.Body.String(), `"rooms":[]`)
}

func TestAvailabilityHandler_GetAvailability_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing room type", "/api/hotels/1/availability?check_in=2025-03-12&check_out=2025-03-14"},
		{"bad check in", "/api/hotels/1/availability?room_type=deluxe&check_in=12-03-2025&check_out=2025-03-14"},
		{"bad check out", "/api/hotels/1/availability?room_type=deluxe&check_in=2025-03-12&check_out=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAvailabilityService)
			h := newAvailabilityHandler(svc)

			c, _ := newContext(http.MethodGet, tt.target, "", nil)
			withParams(c, "hotelID", "1")

			assertHTTPError(t, h.GetAvailability(c), http.StatusBadRequest, "VALIDATION_ERROR")
			svc.AssertNotCalled(t, "FindFreeRooms")
		})
	}
}

func TestAvailabilityHandler_GetAvailability_ServiceValidation(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)
	svc.On("FindFreeRooms", mock.Anything, uint(1), "deluxe", mock.Anything, mock.Anything).
		Return(nil, errors.NewValidationError("check_out", "must be after check_in"))

	c, _ := newContext(http.MethodGet, "/api/hotels/1/availability?room_type=deluxe&check_in=2025-03-14&check_out=2025-03-12", "", nil)
	withParams(c, "hotelID", "1")

	assertHTTPError(t, h.GetAvailability(c), http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestAvailabilityHandler_GetCheckInCalendar_Defaults(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	disabled := []time.Time{today.AddDate(0, 0, 2), today.AddDate(0, 0, 3)}
	svc.On("DisabledCheckInDates", mock.Anything, uint(1), "deluxe", today, defaultCalendarDays).Return(disabled, nil)

	c, rec := newContext(http.MethodGet, "/api/hotels/1/calendar/check-in?room_type=deluxe", "", nil)
	withParams(c, "hotelID", "1")

	require.NoError(t, h.GetCheckInCalendar(c))

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-03-12", "2025-03-13"}, resp.DisabledDates)
	svc.AssertExpectations(t)
}

func TestAvailabilityHandler_GetCheckInCalendar_DefaultsToHotelDay(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := NewAvailabilityHandler(svc, time.FixedZone("EAT", 3*60*60))
	h.now = func() time.Time { return time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC) }

	hotelToday := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	svc.On("DisabledCheckInDates", mock.Anything, uint(1), "deluxe", hotelToday, defaultCalendarDays).Return([]time.Time{}, nil)

	c, _ := newContext(http.MethodGet, "/api/hotels/1/calendar/check-in?room_type=deluxe", "", nil)
	withParams(c, "hotelID", "1")

	require.NoError(t, h.GetCheckInCalendar(c))
	svc.AssertExpectations(t)
}

func TestAvailabilityHandler_GetCheckInCalendar_ExplicitWindow(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	svc.On("DisabledCheckInDates", mock.Anything, uint(2), "standard", from, 14).Return([]time.Time{}, nil)

	c, rec := newContext(http.MethodGet, "/api/hotels/2/calendar/check-in?room_type=standard&from=2025-04-01&days=14", "", nil)
	withParams(c, "hotelID", "2")

	require.NoError(t, h.GetCheckInCalendar(c))
	assert.Contains(t, rec.Body.String(), `"disabled_dates":[]`)
	svc.AssertExpectations(t)
}

func TestAvailabilityHandler_GetCheckInCalendar_HorizonBounds(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	c, _ := newContext(http.MethodGet, "/api/hotels/1/calendar/check-in?room_type=deluxe&days=400", "", nil)
	withParams(c, "hotelID", "1")

	assertHTTPError(t, h.GetCheckInCalendar(c), http.StatusBadRequest, "VALIDATION_ERROR")
	svc.AssertNotCalled(t, "DisabledCheckInDates")
}

func TestAvailabilityHandler_GetCheckOutCalendar(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	checkIn := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	svc.On("DisabledCheckOutDates", mock.Anything, uint(1), "deluxe", checkIn, 7).
		Return([]time.Time{checkIn.AddDate(0, 0, 5)}, nil)

	c, rec := newContext(http.MethodGet, "/api/hotels/1/calendar/check-out?room_type=deluxe&check_in=2025-03-12&days=7", "", nil)
	withParams(c, "hotelID", "1")

	require.NoError(t, h.GetCheckOutCalendar(c))

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-03-17"}, resp.DisabledDates)
}

func TestAvailabilityHandler_GetCheckOutCalendar_RequiresCheckIn(t *testing.T) {
	svc := new(MockAvailabilityService)
	h := newAvailabilityHandler(svc)

	c, _ := newContext(http.MethodGet, "/api/hotels/1/calendar/check-out?room_type=deluxe", "", nil)
	withParams(c, "hotelID", "1")

	assertHTTPError(t, h.GetCheckOutCalendar(c), http.StatusBadRequest, "VALIDATION_ERROR")
}
