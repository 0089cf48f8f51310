package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelres/internal/auth"
	"hotelres/internal/errors"
	"hotelres/internal/gateway"
	"hotelres/internal/metrics"
	"hotelres/internal/model"
	"hotelres/internal/repository"
)

// RefundWindow is how long after collection a payment may be refunded.
const RefundWindow = 24 * time.Hour

const txRefPrefix = "HTL-"

// Meta keys on Payment.Meta.
const (
	metaInitiateRequest  = "initiate_request"
	metaInitiateResponse = "initiate_response"
	metaWebhookEvents    = "webhook_events"
	metaVerifyEvents     = "verify_events"
	metaRefund           = "refund"
)

// signatureHeaders are recorded with each webhook delivery.
var signatureHeaders = []string{"Chapa-Signature", "X-Chapa-Signature"}

// WebhookOutcome describes what a webhook delivery did.
type WebhookOutcome string

const (
	WebhookApplied WebhookOutcome = "applied"
	WebhookNoop    WebhookOutcome = "noop"
	WebhookDropped WebhookOutcome = "dropped"
)

// RefundInput is a refund request made by Actor at Now.
type RefundInput struct {
	PaymentID uuid.UUID
	Reason    string
	Actor     auth.Identity
	Now       time.Time
}

// PaymentStatusView is the polling view of a payment.
type PaymentStatusView struct {
	TxRef         string              `json:"tx_ref"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	IntentStatus  model.IntentStatus  `json:"intent_status,omitempty"`
	ReservationID *uuid.UUID          `json:"reservation_id,omitempty"`
}

// PaymentSettings configure new checkouts. Currency applies to reservation
// payments; intent payments use the intent's currency.
type PaymentSettings struct {
	CallbackURL string
	ReturnURL   string
	Currency    string
}

// PaymentService drives payments through the gateway state machine.
type PaymentService interface {
	InitiateIntentPayment(ctx context.Context, intentID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error)
	InitiateReservationPayment(ctx context.Context, reservationID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error)
	ApplyWebhook(ctx context.Context, body []byte, headers http.Header, now time.Time) (WebhookOutcome, error)
	ApplyVerify(ctx context.Context, txRef string, now time.Time) (model.PaymentStatus, error)
	ApplyRefund(ctx context.Context, in RefundInput) (*model.Payment, error)
	PaymentStatus(ctx context.Context, txRef string, caller auth.Identity) (*PaymentStatusView, error)
}

type paymentService struct {
	store    repository.Store
	gateway  gateway.Gateway
	audit    *AuditSink
	settings PaymentSettings
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewPaymentService creates a payment service.
func NewPaymentService(
	store repository.Store,
	gw gateway.Gateway,
	audit *AuditSink,
	settings PaymentSettings,
	m *metrics.Metrics,
	logger *zap.Logger,
) PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &paymentService{
		store:    store,
		gateway:  gw,
		audit:    audit,
		settings: settings,
		metrics:  m,
		logger:   logger,
	}
}

// NewTxRef returns a fresh gateway transaction reference.
func NewTxRef() string {
	return txRefPrefix + uuid.New().String()
}

// InitiateIntentPayment starts a checkout for the caller's own pending intent.
func (s *paymentService) InitiateIntentPayment(ctx context.Context, intentID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error) {
	user, err := s.findUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	var payment *model.Payment
	notPayable, resumed := false, false

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		intent, err := tx.Intents().FindByIDForUpdate(ctx, intentID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrIntentNotFound
			}
			return fmt.Errorf("find intent: %w", err)
		}
		if intent.UserID != caller.UserID {
			return errors.ErrIntentNotFound
		}

		if !intent.IsPayable(now) {
			notPayable = true
			if intent.Status == model.IntentStatusPending {
				intent.Status = model.IntentStatusExpired
				if err := tx.Intents().Update(ctx, intent); err != nil {
					return fmt.Errorf("expire intent: %w", err)
				}
			}
			return nil
		}

		payments, err := tx.Payments().ListByOwner(ctx, model.IntentOwner(intent.ID))
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		if open := openPayment(payments); open != nil {
			payment, resumed = open, true
			return nil
		}

		payment = model.NewPayment(model.IntentOwner(intent.ID), intent.TotalAmount, intent.Currency, model.PaymentMethodChapa, NewTxRef())
		payment.SetMetaOnce(metaInitiateRequest, initiateRequestMeta(payment, caller, now))
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if notPayable {
		return nil, errors.ErrIntentNotPayable
	}
	if resumed {
		return s.resumeCheckout(ctx, payment, user, now)
	}

	s.record(ctx, payment, model.PaymentSourceInitiate, "", "payment created for intent "+intentID.String())
	return s.startCheckout(ctx, payment, user, now)
}

// InitiateReservationPayment starts a checkout for the outstanding balance of
// a reservation. No payment is created when the reservation is already paid.
func (s *paymentService) InitiateReservationPayment(ctx context.Context, reservationID uuid.UUID, caller auth.Identity, now time.Time) (*model.Payment, error) {
	var payment *model.Payment
	var guestID uint
	resumed := false

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		reservation, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrReservationNotFound
			}
			return fmt.Errorf("find reservation: %w", err)
		}
		if !caller.CanActOnBehalfOf(reservation.UserID) {
			return errors.ErrReservationNotFound
		}
		if err := AssertNotAlreadyPaid(reservation); err != nil {
			return err
		}

		payments, err := tx.Payments().ListByOwner(ctx, model.ReservationOwner(reservation.ID))
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		outstanding := reservation.TotalAmount.Sub(collected(payments))
		if !outstanding.IsPositive() {
			return errors.ErrReservationAlreadyPaid
		}

		guestID = reservation.UserID
		if open := openPayment(payments); open != nil {
			payment, resumed = open, true
			return nil
		}

		payment = model.NewPayment(model.ReservationOwner(reservation.ID), outstanding, s.settings.Currency, model.PaymentMethodChapa, NewTxRef())
		payment.SetMetaOnce(metaInitiateRequest, initiateRequestMeta(payment, caller, now))
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	guest, err := s.findUser(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if resumed {
		return s.resumeCheckout(ctx, payment, guest, now)
	}

	s.record(ctx, payment, model.PaymentSourceInitiate, "", "payment created for reservation "+reservationID.String())
	return s.startCheckout(ctx, payment, guest, now)
}

// openPayment returns the owner's payment that is still awaiting an outcome.
// An owner has at most one, so a repeated initiate reuses it.
func openPayment(payments []model.Payment) *model.Payment {
	for i := range payments {
		if payments[i].Status.IsOpen() {
			return &payments[i]
		}
	}
	return nil
}

// resumeCheckout hands back an open payment's checkout, asking the gateway
// again under the same tx_ref when the earlier call never got a checkout URL.
func (s *paymentService) resumeCheckout(ctx context.Context, payment *model.Payment, user *model.User, now time.Time) (*model.Payment, error) {
	if payment.CheckoutURL != "" {
		s.logger.Info("reusing open checkout",
			zap.String("tx_ref", payment.TxRef),
			zap.String("status", string(payment.Status)),
		)
		return payment, nil
	}
	return s.startCheckout(ctx, payment, user, now)
}

// startCheckout calls the gateway for a committed initiated payment and moves
// it to pending unless a webhook got there first.
func (s *paymentService) startCheckout(ctx context.Context, payment *model.Payment, user *model.User, now time.Time) (*model.Payment, error) {
	first, last := splitName(user.Name)
	res, err := s.gateway.Initiate(ctx, gateway.InitiateRequest{
		TxRef:    payment.TxRef,
		Amount:   payment.Amount,
		Currency: payment.Currency,
		Customer: gateway.Customer{
			Email:     user.Email,
			FirstName: first,
			LastName:  last,
			Phone:     user.Phone,
		},
		CallbackURL: s.settings.CallbackURL,
		ReturnURL:   s.settings.ReturnURL,
	})
	if err != nil {
		s.logger.Error("gateway initiate failed", zap.String("tx_ref", payment.TxRef), zap.Error(err))
		s.record(ctx, payment, model.PaymentSourceInitiate, payment.Status, "gateway initiate failed")
		return nil, err
	}

	var from model.PaymentStatus
	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		current, err := tx.Payments().FindByIDForUpdate(ctx, payment.ID)
		if err != nil {
			return fmt.Errorf("reload payment: %w", err)
		}
		from = current.Status
		current.CheckoutURL = res.CheckoutURL
		current.SetMetaOnce(metaInitiateResponse, map[string]interface{}{
			"received_at":  now.UTC().Format(time.RFC3339Nano),
			"checkout_url": res.CheckoutURL,
			"status":       res.Status,
		})
		if current.Status == model.PaymentStatusInitiated {
			current.Status = model.PaymentStatusPending
		}
		if err := tx.Payments().Update(ctx, current); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		payment = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	if from != payment.Status {
		s.metrics.RecordTransition(string(model.PaymentSourceInitiate), string(from), string(payment.Status))
		s.record(ctx, payment, model.PaymentSourceInitiate, from, "checkout started")
	}
	s.logger.Info("checkout started",
		zap.String("tx_ref", payment.TxRef),
		zap.String("status", string(payment.Status)),
	)
	return payment, nil
}

// ApplyWebhook applies a gateway notification. Malformed or unknown
// deliveries are dropped and reported as WebhookDropped with a nil error.
func (s *paymentService) ApplyWebhook(ctx context.Context, body []byte, headers http.Header, now time.Time) (WebhookOutcome, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.Warn("dropping webhook with malformed body", zap.Error(err))
		s.metrics.RecordWebhook(string(WebhookDropped))
		return WebhookDropped, nil
	}

	txRef := stringField(payload, "tx_ref")
	if txRef == "" {
		txRef = stringField(payload, "trx_ref")
	}
	if txRef == "" {
		s.logger.Warn("dropping webhook without transaction reference")
		s.metrics.RecordWebhook(string(WebhookDropped))
		return WebhookDropped, nil
	}

	signatures := map[string]interface{}{}
	for _, h := range signatureHeaders {
		if v := headers.Get(h); v != "" {
			signatures[h] = v
		}
	}
	event := map[string]interface{}{
		"received_at": now.UTC().Format(time.RFC3339Nano),
		"payload":     payload,
		"signatures":  signatures,
	}

	_, changed, err := s.applyGatewayStatus(ctx, model.PaymentSourceWebhook, txRef, stringField(payload, "status"), metaWebhookEvents, event, now)
	if err != nil {
		if stderrors.Is(err, errors.ErrPaymentNotFound) {
			s.logger.Warn("dropping webhook for unknown transaction", zap.String("tx_ref", txRef))
			s.metrics.RecordWebhook(string(WebhookDropped))
			return WebhookDropped, nil
		}
		s.metrics.RecordWebhook("error")
		return "", err
	}

	outcome := WebhookNoop
	if changed {
		outcome = WebhookApplied
	}
	s.metrics.RecordWebhook(string(outcome))
	return outcome, nil
}

// ApplyVerify asks the gateway for the authoritative status and applies it.
// Repeated calls for a settled payment only append to its history.
func (s *paymentService) ApplyVerify(ctx context.Context, txRef string, now time.Time) (model.PaymentStatus, error) {
	if _, err := s.store.Payments().FindByTxRef(ctx, txRef); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrPaymentNotFound
		}
		return "", fmt.Errorf("find payment: %w", err)
	}

	res, err := s.gateway.Verify(ctx, txRef)
	if err != nil {
		s.logger.Error("gateway verify failed", zap.String("tx_ref", txRef), zap.Error(err))
		return "", err
	}

	event := map[string]interface{}{
		"received_at":    now.UTC().Format(time.RFC3339Nano),
		"gateway_status": res.GatewayStatus,
		"payload":        decodeRaw(res.RawPayload),
	}
	payment, _, err := s.applyGatewayStatus(ctx, model.PaymentSourceVerify, txRef, res.GatewayStatus, metaVerifyEvents, event, now)
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

// applyGatewayStatus is the single locked transition used by webhook and
// verify. The event is always appended to meta; the status only moves while
// the payment is open and the gateway status is recognised.
func (s *paymentService) applyGatewayStatus(
	ctx context.Context,
	source model.PaymentEventSource,
	txRef, gatewayStatus, metaKey string,
	event map[string]interface{},
	now time.Time,
) (*model.Payment, bool, error) {
	var payment *model.Payment
	var from model.PaymentStatus

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		p, err := tx.Payments().FindByTxRefForUpdate(ctx, txRef)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrPaymentNotFound
			}
			return fmt.Errorf("lock payment: %w", err)
		}

		from = p.Status
		p.AppendMeta(metaKey, event)
		if p.Status.IsOpen() {
			if to, ok := MapGatewayStatus(gatewayStatus); ok {
				p.Status = to
				if to == model.PaymentStatusCompleted {
					paidAt := now.UTC()
					p.PaidAt = &paidAt
				}
			}
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		if err := s.cascade(ctx, tx, p, from); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	changed := from != payment.Status
	if changed {
		s.metrics.RecordTransition(string(source), string(from), string(payment.Status))
		s.record(ctx, payment, source, from, "gateway status "+gatewayStatus)
		s.logger.Info("payment transitioned",
			zap.String("tx_ref", txRef),
			zap.String("source", string(source)),
			zap.String("from", string(from)),
			zap.String("to", string(payment.Status)),
		)
	} else {
		s.record(ctx, payment, source, from, "no-op: gateway status "+gatewayStatus)
		s.logger.Info("payment unchanged",
			zap.String("tx_ref", txRef),
			zap.String("source", string(source)),
			zap.String("status", string(payment.Status)),
			zap.String("gateway_status", gatewayStatus),
		)
	}
	return payment, changed, nil
}

// cascade keeps the owner of p consistent after a webhook or verify. The
// reservation status is always recomputed; intents only follow a transition.
func (s *paymentService) cascade(ctx context.Context, tx repository.Store, p *model.Payment, from model.PaymentStatus) error {
	switch p.OwnerType {
	case model.OwnerReservation:
		reservation, err := tx.Reservations().FindByIDForUpdate(ctx, p.OwnerID)
		if err != nil {
			return fmt.Errorf("lock reservation: %w", err)
		}
		payments, err := tx.Payments().ListByOwner(ctx, p.Owner())
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		status := RecomputePaymentStatus(reservation, payments)
		if status == reservation.PaymentStatus {
			return nil
		}
		reservation.PaymentStatus = status
		if err := tx.Reservations().Update(ctx, reservation); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
	case model.OwnerIntent:
		if from == p.Status {
			return nil
		}
		intent, err := tx.Intents().FindByIDForUpdate(ctx, p.OwnerID)
		if err != nil {
			return fmt.Errorf("lock intent: %w", err)
		}
		next := intent.Status
		switch {
		case p.Status.IsCompleted():
			next = model.IntentStatusConfirmed
		case p.Status == model.PaymentStatusFailed && intent.Status == model.IntentStatusPending:
			next = model.IntentStatusFailed
		}
		if next == intent.Status {
			return nil
		}
		intent.Status = next
		if err := tx.Intents().Update(ctx, intent); err != nil {
			return fmt.Errorf("update intent: %w", err)
		}
	}
	return nil
}

// ApplyRefund refunds a completed payment within RefundWindow of collection.
// The gateway call happens under the payment row lock; a gateway failure
// leaves the payment untouched.
func (s *paymentService) ApplyRefund(ctx context.Context, in RefundInput) (*model.Payment, error) {
	reason := strings.TrimSpace(in.Reason)

	var payment *model.Payment
	var from model.PaymentStatus

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		p, err := tx.Payments().FindByIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrPaymentNotFound
			}
			return fmt.Errorf("lock payment: %w", err)
		}

		ownerUserID, err := ownerUser(ctx, tx, p)
		if err != nil {
			return err
		}
		if !in.Actor.CanActOnBehalfOf(ownerUserID) {
			return errors.ErrPaymentNotFound
		}

		if !p.Status.IsCompleted() {
			return errors.ErrPaymentNotCompleted
		}
		if p.PaidAt == nil || in.Now.After(p.PaidAt.Add(RefundWindow)) {
			return errors.ErrRefundWindowExpired
		}

		if _, err := s.gateway.Refund(ctx, p.TxRef, reason); err != nil {
			s.logger.Error("gateway refund failed", zap.String("tx_ref", p.TxRef), zap.Error(err))
			return err
		}

		from = p.Status
		refundedAt := in.Now.UTC()
		p.Status = model.PaymentStatusRefunded
		p.RefundedAt = &refundedAt
		p.SetMetaOnce(metaRefund, map[string]interface{}{
			"refunded_at": refundedAt.Format(time.RFC3339Nano),
			"reason":      reason,
			"by":          in.Actor.UserID,
		})
		if err := tx.Payments().Update(ctx, p); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		if err := refundCascade(ctx, tx, p); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordTransition(string(model.PaymentSourceRefund), string(from), string(payment.Status))
	s.record(ctx, payment, model.PaymentSourceRefund, from, reason)
	s.logger.Info("payment refunded",
		zap.String("tx_ref", payment.TxRef),
		zap.Uint("by", in.Actor.UserID),
	)
	return payment, nil
}

func refundCascade(ctx context.Context, tx repository.Store, p *model.Payment) error {
	switch p.OwnerType {
	case model.OwnerReservation:
		reservation, err := tx.Reservations().FindByIDForUpdate(ctx, p.OwnerID)
		if err != nil {
			return fmt.Errorf("lock reservation: %w", err)
		}
		reservation.PaymentStatus = model.ReservationPaymentRefunded
		if err := tx.Reservations().Update(ctx, reservation); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
	case model.OwnerIntent:
		intent, err := tx.Intents().FindByIDForUpdate(ctx, p.OwnerID)
		if err != nil {
			return fmt.Errorf("lock intent: %w", err)
		}
		intent.Status = model.IntentStatusFailed
		if err := tx.Intents().Update(ctx, intent); err != nil {
			return fmt.Errorf("update intent: %w", err)
		}
	}
	return nil
}

// PaymentStatus reports a payment and its owner's state to the owning user.
func (s *paymentService) PaymentStatus(ctx context.Context, txRef string, caller auth.Identity) (*PaymentStatusView, error) {
	p, err := s.store.Payments().FindByTxRef(ctx, txRef)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}

	view := &PaymentStatusView{TxRef: p.TxRef, PaymentStatus: p.Status}
	switch p.OwnerType {
	case model.OwnerIntent:
		intent, err := s.store.Intents().FindByID(ctx, p.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("find intent: %w", err)
		}
		if !caller.CanActOnBehalfOf(intent.UserID) {
			return nil, errors.ErrPaymentNotFound
		}
		view.IntentStatus = intent.Status
		view.ReservationID = intent.ReservationID
	case model.OwnerReservation:
		reservation, err := s.store.Reservations().FindByID(ctx, p.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("find reservation: %w", err)
		}
		if !caller.CanActOnBehalfOf(reservation.UserID) {
			return nil, errors.ErrPaymentNotFound
		}
		id := reservation.ID
		view.ReservationID = &id
	}
	return view, nil
}

func (s *paymentService) findUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// record sends an audit entry for p, which is now in p.Status.
func (s *paymentService) record(ctx context.Context, p *model.Payment, source model.PaymentEventSource, from model.PaymentStatus, message string) {
	s.audit.Record(ctx, model.PaymentLog{
		PaymentID:  p.ID,
		TxRef:      p.TxRef,
		Source:     source,
		FromStatus: from,
		ToStatus:   p.Status,
		Message:    message,
	})
}

func ownerUser(ctx context.Context, tx repository.Store, p *model.Payment) (uint, error) {
	switch p.OwnerType {
	case model.OwnerIntent:
		intent, err := tx.Intents().FindByID(ctx, p.OwnerID)
		if err != nil {
			return 0, fmt.Errorf("find intent: %w", err)
		}
		return intent.UserID, nil
	case model.OwnerReservation:
		reservation, err := tx.Reservations().FindByID(ctx, p.OwnerID)
		if err != nil {
			return 0, fmt.Errorf("find reservation: %w", err)
		}
		return reservation.UserID, nil
	default:
		return 0, model.ErrInvalidPaymentOwner
	}
}

func initiateRequestMeta(p *model.Payment, caller auth.Identity, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"requested_at": now.UTC().Format(time.RFC3339Nano),
		"requested_by": caller.UserID,
		"amount":       p.Amount.StringFixed(2),
		"currency":     p.Currency,
	}
}

func collected(payments []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status.IsCompleted() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func decodeRaw(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
