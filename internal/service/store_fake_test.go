package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotelres/internal/model"
	"hotelres/internal/repository"
)

// memStore is an in-memory repository.Store. Transactions are serialised by
// a single mutex, which stands in for row locks, and are rolled back on error.
type memStore struct {
	mu   *sync.Mutex
	data *memData
	inTx bool
}

type memData struct {
	nextID       uint
	users        map[uint]model.User
	hotels       map[uint]model.Hotel
	rooms        map[uint]model.Room
	reservations map[uuid.UUID]model.Reservation
	intents      map[uuid.UUID]model.ReservationIntent
	payments     map[uuid.UUID]model.Payment
	paymentOrder []uuid.UUID
	logs         []model.PaymentLog
}

func newMemStore() *memStore {
	return &memStore{
		mu: &sync.Mutex{},
		data: &memData{
			users:        map[uint]model.User{},
			hotels:       map[uint]model.Hotel{},
			rooms:        map[uint]model.Room{},
			reservations: map[uuid.UUID]model.Reservation{},
			intents:      map[uuid.UUID]model.ReservationIntent{},
			payments:     map[uuid.UUID]model.Payment{},
		},
	}
}

var _ repository.Store = (*memStore)(nil)

func (d *memData) clone() *memData {
	c := &memData{
		nextID:       d.nextID,
		users:        make(map[uint]model.User, len(d.users)),
		hotels:       make(map[uint]model.Hotel, len(d.hotels)),
		rooms:        make(map[uint]model.Room, len(d.rooms)),
		reservations: make(map[uuid.UUID]model.Reservation, len(d.reservations)),
		intents:      make(map[uuid.UUID]model.ReservationIntent, len(d.intents)),
		payments:     make(map[uuid.UUID]model.Payment, len(d.payments)),
		paymentOrder: append([]uuid.UUID(nil), d.paymentOrder...),
		logs:         append([]model.PaymentLog(nil), d.logs...),
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.hotels {
		c.hotels[k] = v
	}
	for k, v := range d.rooms {
		c.rooms[k] = v
	}
	for k, v := range d.reservations {
		c.reservations[k] = v
	}
	for k, v := range d.intents {
		c.intents[k] = v
	}
	for k, v := range d.payments {
		c.payments[k] = clonePayment(v)
	}
	return c
}

func clonePayment(p model.Payment) model.Payment {
	if p.Meta != nil {
		meta := make(datatypes.JSONMap, len(p.Meta))
		for k, v := range p.Meta {
			meta[k] = v
		}
		p.Meta = meta
	}
	return p
}

func (s *memStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &memStore{mu: s.mu, data: s.data, inTx: true}); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

func (s *memStore) Users() repository.UserRepository               { return memUsers{s} }
func (s *memStore) Hotels() repository.HotelRepository             { return memHotels{s} }
func (s *memStore) Rooms() repository.RoomRepository               { return memRooms{s} }
func (s *memStore) Reservations() repository.ReservationRepository { return memReservations{s} }
func (s *memStore) Intents() repository.IntentRepository           { return memIntents{s} }
func (s *memStore) Payments() repository.PaymentRepository         { return memPayments{s} }
func (s *memStore) PaymentLogs() repository.PaymentLogRepository   { return memPaymentLogs{s} }

func (s *memStore) id() uint {
	s.data.nextID++
	return s.data.nextID
}

// payment returns a copy of the stored payment, for assertions.
func (s *memStore) payment(id uuid.UUID) model.Payment {
	unlock := s.lock()
	defer unlock()
	return clonePayment(s.data.payments[id])
}

func (s *memStore) paymentCount() int {
	unlock := s.lock()
	defer unlock()
	return len(s.data.payments)
}

func (s *memStore) auditLogs() []model.PaymentLog {
	unlock := s.lock()
	defer unlock()
	return append([]model.PaymentLog(nil), s.data.logs...)
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(ctx context.Context, user *model.User) error {
	unlock := r.s.lock()
	defer unlock()
	for _, u := range r.s.data.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	if user.ID == 0 {
		user.ID = r.s.id()
	}
	r.s.data.users[user.ID] = *user
	return nil
}

func (r memUsers) Update(ctx context.Context, user *model.User) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.users[user.ID] = *user
	return nil
}

func (r memUsers) FindByID(ctx context.Context, id uint) (*model.User, error) {
	unlock := r.s.lock()
	defer unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	unlock := r.s.lock()
	defer unlock()
	for _, u := range r.s.data.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memHotels struct{ s *memStore }

func (r memHotels) Create(ctx context.Context, hotel *model.Hotel) error {
	unlock := r.s.lock()
	defer unlock()
	if hotel.ID == 0 {
		hotel.ID = r.s.id()
	}
	r.s.data.hotels[hotel.ID] = *hotel
	return nil
}

func (r memHotels) FindByID(ctx context.Context, id uint) (*model.Hotel, error) {
	unlock := r.s.lock()
	defer unlock()
	h, ok := r.s.data.hotels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &h, nil
}

func (r memHotels) FindByName(ctx context.Context, name string) (*model.Hotel, error) {
	unlock := r.s.lock()
	defer unlock()
	for _, h := range r.s.data.hotels {
		if h.Name == name {
			found := h
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memHotels) Update(ctx context.Context, hotel *model.Hotel) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.hotels[hotel.ID] = *hotel
	return nil
}

type memRooms struct{ s *memStore }

func (r memRooms) Create(ctx context.Context, room *model.Room) error {
	if err := room.BeforeSave(nil); err != nil {
		return err
	}
	unlock := r.s.lock()
	defer unlock()
	if room.ID == 0 {
		room.ID = r.s.id()
	}
	r.s.data.rooms[room.ID] = *room
	return nil
}

func (r memRooms) Update(ctx context.Context, room *model.Room) error {
	if err := room.BeforeSave(nil); err != nil {
		return err
	}
	unlock := r.s.lock()
	defer unlock()
	r.s.data.rooms[room.ID] = *room
	return nil
}

func (r memRooms) FindByNumber(ctx context.Context, hotelID uint, number string) (*model.Room, error) {
	unlock := r.s.lock()
	defer unlock()
	for _, room := range r.s.data.rooms {
		if room.HotelID == hotelID && room.Number == number {
			found := room
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memRooms) ListByHotelType(ctx context.Context, hotelID uint, roomType string, status model.RoomStatus) ([]model.Room, error) {
	unlock := r.s.lock()
	defer unlock()
	var rooms []model.Room
	for _, room := range r.s.data.rooms {
		if room.HotelID == hotelID && room.Type == roomType && room.Status == status {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

type memReservations struct{ s *memStore }

func (r memReservations) Create(ctx context.Context, reservation *model.Reservation) error {
	if err := reservation.BeforeCreate(nil); err != nil {
		return err
	}
	unlock := r.s.lock()
	defer unlock()
	r.s.data.reservations[reservation.ID] = *reservation
	return nil
}

func (r memReservations) Update(ctx context.Context, reservation *model.Reservation) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.reservations[reservation.ID] = *reservation
	return nil
}

func (r memReservations) FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	unlock := r.s.lock()
	defer unlock()
	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &res, nil
}

func (r memReservations) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r memReservations) ListActiveOverlapping(ctx context.Context, roomIDs []uint, from, to time.Time) ([]model.Reservation, error) {
	unlock := r.s.lock()
	defer unlock()
	wanted := make(map[uint]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	var out []model.Reservation
	for _, res := range r.s.data.reservations {
		if !wanted[res.RoomID] || !res.Status.IsActive() {
			continue
		}
		if !res.CheckIn.After(to) && !res.CheckOut.Before(from) {
			out = append(out, res)
		}
	}
	return out, nil
}

type memIntents struct{ s *memStore }

func (r memIntents) Create(ctx context.Context, intent *model.ReservationIntent) error {
	if err := intent.BeforeCreate(nil); err != nil {
		return err
	}
	unlock := r.s.lock()
	defer unlock()
	r.s.data.intents[intent.ID] = *intent
	return nil
}

func (r memIntents) Update(ctx context.Context, intent *model.ReservationIntent) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.intents[intent.ID] = *intent
	return nil
}

func (r memIntents) FindByID(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error) {
	unlock := r.s.lock()
	defer unlock()
	intent, ok := r.s.data.intents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &intent, nil
}

func (r memIntents) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ReservationIntent, error) {
	return r.FindByID(ctx, id)
}

type memPayments struct{ s *memStore }

func (r memPayments) Create(ctx context.Context, payment *model.Payment) error {
	if err := payment.BeforeCreate(nil); err != nil {
		return err
	}
	unlock := r.s.lock()
	defer unlock()
	for _, p := range r.s.data.payments {
		if p.TxRef == payment.TxRef {
			return fmt.Errorf("duplicate transaction_reference %s", payment.TxRef)
		}
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.s.data.payments[payment.ID] = clonePayment(*payment)
	r.s.data.paymentOrder = append(r.s.data.paymentOrder, payment.ID)
	return nil
}

func (r memPayments) Update(ctx context.Context, payment *model.Payment) error {
	unlock := r.s.lock()
	defer unlock()
	if _, ok := r.s.data.payments[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.data.payments[payment.ID] = clonePayment(*payment)
	return nil
}

func (r memPayments) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	unlock := r.s.lock()
	defer unlock()
	p, ok := r.s.data.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := clonePayment(p)
	return &cp, nil
}

func (r memPayments) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return r.FindByID(ctx, id)
}

func (r memPayments) FindByTxRef(ctx context.Context, txRef string) (*model.Payment, error) {
	unlock := r.s.lock()
	defer unlock()
	for _, p := range r.s.data.payments {
		if p.TxRef == txRef {
			cp := clonePayment(p)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memPayments) FindByTxRefForUpdate(ctx context.Context, txRef string) (*model.Payment, error) {
	return r.FindByTxRef(ctx, txRef)
}

func (r memPayments) ListByOwner(ctx context.Context, owner model.PaymentOwner) ([]model.Payment, error) {
	unlock := r.s.lock()
	defer unlock()
	var out []model.Payment
	for _, id := range r.s.data.paymentOrder {
		p := r.s.data.payments[id]
		if p.Owner() == owner {
			out = append(out, clonePayment(p))
		}
	}
	return out, nil
}

type memPaymentLogs struct{ s *memStore }

func (r memPaymentLogs) Create(ctx context.Context, log *model.PaymentLog) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.logs = append(r.s.data.logs, *log)
	return nil
}

func (r memPaymentLogs) CreateBatch(ctx context.Context, logs []model.PaymentLog) error {
	unlock := r.s.lock()
	defer unlock()
	r.s.data.logs = append(r.s.data.logs, logs...)
	return nil
}
