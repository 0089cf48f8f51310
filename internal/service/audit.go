package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotelres/internal/model"
	"hotelres/internal/repository"
)

const (
	auditBufferSize    = 100
	auditBatchSize     = 10
	auditFlushInterval = time.Second
)

// AuditSink writes PaymentLog entries in the background. Recording never
// blocks the caller and never fails the surrounding operation.
type AuditSink struct {
	repo    repository.PaymentLogRepository
	logger  *zap.Logger
	entries chan model.PaymentLog
	done    chan struct{}
	once    sync.Once

	mu     sync.RWMutex
	closed bool
}

// NewAuditSink starts the background writer.
func NewAuditSink(repo repository.PaymentLogRepository, logger *zap.Logger) *AuditSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AuditSink{
		repo:    repo,
		logger:  logger,
		entries: make(chan model.PaymentLog, auditBufferSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Record queues an entry. When the buffer is full or the sink is closed the
// entry is written synchronously instead.
func (s *AuditSink) Record(ctx context.Context, entry model.PaymentLog) {
	if s == nil {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.write(ctx, entry)
		return
	}

	select {
	case s.entries <- entry:
	default:
		s.write(ctx, entry)
	}
}

func (s *AuditSink) write(ctx context.Context, entry model.PaymentLog) {
	if err := s.repo.Create(context.WithoutCancel(ctx), &entry); err != nil {
		s.logger.Warn("audit write failed", zap.String("tx_ref", entry.TxRef), zap.Error(err))
	}
}

// Close flushes pending entries and stops the writer. It is safe to call
// more than once.
func (s *AuditSink) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.entries)
		s.mu.Unlock()
		<-s.done
	})
}

func (s *AuditSink) run() {
	defer close(s.done)

	ctx := context.Background()
	batch := make([]model.PaymentLog, 0, auditBatchSize)
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			s.logger.Warn("audit batch write failed", zap.Int("entries", len(batch)), zap.Error(err))
		}
		batch = make([]model.PaymentLog, 0, auditBatchSize)
	}

	for {
		select {
		case entry, ok := <-s.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
