package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelres/internal/auth"
	"hotelres/internal/gateway"
	"hotelres/internal/metrics"
	"hotelres/internal/model"
)

// MockGateway is a mock implementation of gateway.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.InitiateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.InitiateResult), args.Error(1)
}

func (m *MockGateway) Verify(ctx context.Context, txRef string) (*gateway.VerifyResult, error) {
	args := m.Called(ctx, txRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerifyResult), args.Error(1)
}

func (m *MockGateway) Refund(ctx context.Context, txRef, reason string) (*gateway.RefundResult, error) {
	args := m.Called(ctx, txRef, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.RefundResult), args.Error(1)
}

var baseTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return DayOf(baseTime).AddDate(0, 0, offset)
}

// fixture is a seeded store with one hotel, a guest and a receptionist.
type fixture struct {
	store        *memStore
	gateway      *MockGateway
	metrics      *metrics.Metrics
	audit        *AuditSink
	hotel        model.Hotel
	guest        model.User
	otherGuest   model.User
	receptionist model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store:   newMemStore(),
		gateway: new(MockGateway),
		metrics: metrics.New("test", prometheus.NewRegistry()),
	}
	f.audit = NewAuditSink(f.store.PaymentLogs(), zap.NewNop())
	t.Cleanup(f.audit.Close)

	f.hotel = model.Hotel{Name: "Skylight", City: "Addis Ababa"}
	require.NoError(t, f.store.Hotels().Create(ctx, &f.hotel))

	f.guest = model.User{Name: "Abebe Kebede Tesfaye", Email: "abebe@example.com", Phone: "+251911000001", Role: model.RoleCustomer}
	f.otherGuest = model.User{Name: "Sara", Email: "sara@example.com", Phone: "+251911000002", Role: model.RoleCustomer}
	f.receptionist = model.User{Name: "Front Desk", Email: "desk@example.com", Phone: "+251911000003", Role: model.RoleReceptionist}
	for _, u := range []*model.User{&f.guest, &f.otherGuest, &f.receptionist} {
		require.NoError(t, f.store.Users().Create(ctx, u))
	}
	return f
}

func identityOf(u model.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func (f *fixture) addRoom(t *testing.T, number, roomType string, price int64, status model.RoomStatus) model.Room {
	t.Helper()
	room := model.Room{HotelID: f.hotel.ID, Number: number, Type: roomType, Price: decimal.NewFromInt(price), Status: status, Capacity: 2}
	require.NoError(t, f.store.Rooms().Create(context.Background(), &room))
	return room
}

func (f *fixture) addReservation(t *testing.T, room model.Room, checkIn, checkOut time.Time, status model.ReservationStatus, total int64) model.Reservation {
	t.Helper()
	res := model.Reservation{
		RoomID:        room.ID,
		UserID:        f.guest.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
		PaymentStatus: model.ReservationPaymentPending,
		TotalAmount:   decimal.NewFromInt(total),
	}
	require.NoError(t, f.store.Reservations().Create(context.Background(), &res))
	return res
}

func (f *fixture) addIntent(t *testing.T, owner model.User, total int64, createdAt time.Time) model.ReservationIntent {
	t.Helper()
	intent := model.ReservationIntent{
		UserID:      owner.ID,
		HotelID:     f.hotel.ID,
		RoomType:    "Standard",
		CheckIn:     DayOf(createdAt).AddDate(0, 0, 1),
		CheckOut:    DayOf(createdAt).AddDate(0, 0, 3),
		Guests:      1,
		Nights:      2,
		TotalAmount: decimal.NewFromInt(total),
		Currency:    "ETB",
		Status:      model.IntentStatusPending,
		ExpiresAt:   createdAt.Add(model.IntentTTL),
	}
	require.NoError(t, f.store.Intents().Create(context.Background(), &intent))
	return intent
}

// addPayment stores a payment directly in the given state.
func (f *fixture) addPayment(t *testing.T, owner model.PaymentOwner, amount int64, status model.PaymentStatus, paidAt *time.Time) model.Payment {
	t.Helper()
	p := model.NewPayment(owner, decimal.NewFromInt(amount), "ETB", model.PaymentMethodChapa, NewTxRef())
	p.Status = status
	p.PaidAt = paidAt
	require.NoError(t, f.store.Payments().Create(context.Background(), p))
	return *p
}

func (f *fixture) paymentService() PaymentService {
	return NewPaymentService(f.store, f.gateway, f.audit, PaymentSettings{
		CallbackURL: "https://api.example.com/api/payments/webhook",
		ReturnURL:   "https://app.example.com/done",
		Currency:    "ETB",
	}, f.metrics, zap.NewNop())
}

func (f *fixture) intentService() IntentService {
	return NewIntentService(f.store, "ETB", nil, f.metrics, zap.NewNop())
}

func (f *fixture) availabilityService() AvailabilityService {
	return NewAvailabilityService(f.store, nil, 0, f.metrics, zap.NewNop())
}

func webhookBody(t *testing.T, txRef, status string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"tx_ref": txRef, "status": status, "amount": "480.00", "currency": "ETB"})
	require.NoError(t, err)
	return body
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
