package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelres/internal/auth"
	"hotelres/internal/errors"
	"hotelres/internal/model"
	"hotelres/internal/service"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) FindFreeRooms(ctx context.Context, hotelID uint, roomType string, checkIn, checkOut time.Time) ([]model.Room, error) {
	args := m.Called(ctx, hotelID, roomType, checkIn, checkOut)
	rooms, _ := args.Get(0).([]model.Room)
	return rooms, args.Error(1)
}

func (m *MockAvailabilityService) DisabledCheckInDates(ctx context.Context, hotelID uint, roomType string, from time.Time, horizonDays int) ([]time.Time, error) {
	args := m.Called(ctx, hotelID, roomType, from, horizonDays)
	days, _ := args.Get(0).([]time.Time)
	return days, args.Error(1)
}

func (m *MockAvailabilityService) DisabledCheckOutDates(ctx context.Context, hotelID uint, roomType string, checkIn time.Time, horizonDays int) ([]time.Time, error) {
	args := m.Called(ctx, hotelID, roomType, checkIn, horizonDays)
	days, _ := args.Get(0).([]time.Time)
	return days, args.Error(1)
}

type MockIntentService struct {
	mock.Mock
}

func (m *MockIntentService) CreateIntent(ctx context.Context, in service.CreateIntentInput) (*model.ReservationIntent, error) {
	args := m.Called(ctx, in)
	intent, _ := args.Get(0).(*model.ReservationIntent)
	return intent, args.Error(1)
}

func (m *MockIntentService) GetIntent(ctx context.Context, id uuid.UUID, caller auth.Identity) (*model.ReservationIntent, error) {
	args := m.Called(ctx, id, caller)
	intent, _ := args.Get(0).(*model.ReservationIntent)
	return intent, args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiateIntentPayment(ctx context.Context, intentID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error) {
	args := m.Called(ctx, intentID, caller, now)
	p, _ := args.Get(0).(*model.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentService) InitiateReservationPayment(ctx context.Context, reservationID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error) {
	args := m.Called(ctx, reservationID, caller, now)
	p, _ := args.Get(0).(*model.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentService) ApplyWebhook(ctx context.Context, body []byte, headers http.Header, now time.Time) (service.WebhookOutcome, error) {
	args := m.Called(ctx, body, headers, now)
	return args.Get(0).(service.WebhookOutcome), args.Error(1)
}

func (m *MockPaymentService) ApplyVerify(ctx context.Context, txRef string, now time.Time) (model.PaymentStatus, error) {
	args := m.Called(ctx, txRef, now)
	return args.Get(0).(model.PaymentStatus), args.Error(1)
}

func (m *MockPaymentService) ApplyRefund(ctx context.Context, in service.RefundInput) (*model.Payment, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*model.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentService) PaymentStatus(ctx context.Context, txRef string, caller auth.Identity) (*service.PaymentStatusView, error) {
	args := m.Called(ctx, txRef, caller)
	view, _ := args.Get(0).(*service.PaymentStatusView)
	return view, args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(2).(*model.User)
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

var guest = auth.Identity{UserID: 7, Email: "guest@example.com", Role: model.RoleCustomer}

// newContext builds an echo context for target. A non-nil caller is installed
// the way the JWT middleware does it.
func newContext(method, target, body string, caller *auth.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if caller != nil {
		c.Set("user", &jwt.Token{
			Valid: true,
			Claims: &auth.Claims{
				UserID: caller.UserID,
				Email:  caller.Email,
				Role:   caller.Role,
			},
		})
	}
	return c, rec
}

func withParams(c echo.Context, pairs ...string) {
	var names, values []string
	for i := 0; i+1 < len(pairs); i += 2 {
		names = append(names, pairs[i])
		values = append(values, pairs[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

func assertHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, status, he.Code)
	resp, ok := he.Message.(errors.ErrorResponse)
	require.True(t, ok, "message should be an ErrorResponse, got %T", he.Message)
	assert.Equal(t, code, resp.Code)
}
