package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hotelres/internal/model"
	"hotelres/internal/service"
)

const defaultCalendarDays = 60

// AvailabilityHandler serves room availability and calendar endpoints.
type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
	location            *time.Location
	now                 func() time.Time
}

// NewAvailabilityHandler creates a new availability handler. Default calendar
// windows start on the current day in loc; nil means UTC.
func NewAvailabilityHandler(availabilityService service.AvailabilityService, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService, location: loc, now: time.Now}
}

// AvailabilityRequest is the free-room query.
type AvailabilityRequest struct {
	HotelID  uint   `param:"hotelID" validate:"required"`
	RoomType string `query:"room_type" validate:"required"`
	CheckIn  string `query:"check_in" validate:"required"`
	CheckOut string `query:"check_out" validate:"required"`
}

// AvailabilityResponse lists the free rooms for a stay.
type AvailabilityResponse struct {
	HotelID  uint         `json:"hotel_id"`
	RoomType string       `json:"room_type"`
	CheckIn  string       `json:"check_in"`
	CheckOut string       `json:"check_out"`
	Rooms    []model.Room `json:"rooms"`
}

// CalendarRequest is a disabled-dates query. Start is "from" for check-in
// calendars and "check_in" for check-out calendars.
type CalendarRequest struct {
	HotelID  uint   `param:"hotelID" validate:"required"`
	RoomType string `query:"room_type" validate:"required"`
	From     string `query:"from"`
	CheckIn  string `query:"check_in"`
	Days     int    `query:"days" validate:"omitempty,min=1,max=366"`
}

// CalendarResponse lists dates that cannot be selected.
type CalendarResponse struct {
	HotelID       uint     `json:"hotel_id"`
	RoomType      string   `json:"room_type"`
	DisabledDates []string `json:"disabled_dates"`
}

// GetAvailability godoc
// @Summary List free rooms of a type for a stay
// @Tags availability
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Param room_type query string true "Room type"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/{hotelID}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return err
	}

	rooms, err := h.availabilityService.FindFreeRooms(c.Request().Context(), req.HotelID, req.RoomType, checkIn, checkOut)
	if err != nil {
		return serviceError(err)
	}
	if rooms == nil {
		rooms = []model.Room{}
	}

	return c.JSON(http.StatusOK, AvailabilityResponse{
		HotelID:  req.HotelID,
		RoomType: req.RoomType,
		CheckIn:  checkIn.Format(DateLayout),
		CheckOut: checkOut.Format(DateLayout),
		Rooms:    rooms,
	})
}

// GetCheckInCalendar godoc
// @Summary List check-in dates with no free room
// @Tags availability
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Param room_type query string true "Room type"
// @Param from query string false "First date (YYYY-MM-DD), defaults to today"
// @Param days query int false "Horizon in days (1-366)"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/{hotelID}/calendar/check-in [get]
func (h *AvailabilityHandler) GetCheckInCalendar(c echo.Context) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	from := service.LocalDay(h.now(), h.location)
	if req.From != "" {
		parsed, err := parseDate("from", req.From)
		if err != nil {
			return err
		}
		from = parsed
	}

	days, err := h.availabilityService.DisabledCheckInDates(c.Request().Context(), req.HotelID, req.RoomType, from, calendarDays(req.Days))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, CalendarResponse{
		HotelID:       req.HotelID,
		RoomType:      req.RoomType,
		DisabledDates: formatDates(days),
	})
}

// GetCheckOutCalendar godoc
// @Summary List check-out dates that cannot follow a check-in
// @Tags availability
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Param room_type query string true "Room type"
// @Param check_in query string true "Chosen check-in date (YYYY-MM-DD)"
// @Param days query int false "Horizon in days (1-366)"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/{hotelID}/calendar/check-out [get]
func (h *AvailabilityHandler) GetCheckOutCalendar(c echo.Context) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return err
	}

	days, err := h.availabilityService.DisabledCheckOutDates(c.Request().Context(), req.HotelID, req.RoomType, checkIn, calendarDays(req.Days))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, CalendarResponse{
		HotelID:       req.HotelID,
		RoomType:      req.RoomType,
		DisabledDates: formatDates(days),
	})
}

func calendarDays(days int) int {
	if days == 0 {
		return defaultCalendarDays
	}
	return days
}
