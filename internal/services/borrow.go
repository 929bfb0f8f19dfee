package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=borrow.go -destination=borrow_mock.go -package=services

// Rejection reasons reported to BorrowMetrics.
const (
	ReasonBookNotFound     = "book_not_found"
	ReasonBorrowerNotFound = "borrower_not_found"
	ReasonIssuerNotFound   = "issuer_not_found"
	ReasonAlreadyBorrowed  = "already_borrowed"
	ReasonOverdue          = "overdue"
	ReasonNotBorrowed      = "not_borrowed"
)

// BorrowLedger defines the ledger operations used by the borrow workflow.
type BorrowLedger interface {
	GetActiveByBook(ctx context.Context, bookID int64) (*models.BorrowRecord, error)
	HasOverdue(ctx context.Context, userID int64, now time.Time) (bool, error)
	Add(ctx context.Context, rec *models.BorrowRecord) error
	MarkReturned(ctx context.Context, id int64, returnedAt time.Time) error
	ListActive(ctx context.Context) ([]models.BorrowRecord, error)
}

// BookGetter resolves books by id.
type BookGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
}

// UserGetter resolves users by id.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BorrowMetrics records workflow outcomes.
type BorrowMetrics interface {
	BookBorrowed()
	BookReturned()
	BorrowRejected(reason string)
}

// AfterCommitFunc defers fn until the write transaction carried by ctx has
// committed, or runs it at once when there is none.
type AfterCommitFunc func(ctx context.Context, fn func())

// BorrowService issues and returns books. Every rule is checked before the
// single ledger write; the ledger's unique index settles concurrent borrows.
type BorrowService struct {
	books       BookGetter
	users       UserGetter
	ledger      BorrowLedger
	kafkaWriter KafkaWriter
	metrics     BorrowMetrics
	afterCommit AfterCommitFunc
	now         func() time.Time
}

// NewBorrowService creates a new BorrowService. kafkaWriter and metrics may be nil.
func NewBorrowService(
	books BookGetter,
	users UserGetter,
	ledger BorrowLedger,
	kafkaWriter KafkaWriter,
	metrics BorrowMetrics,
) *BorrowService {
	return &BorrowService{
		books:       books,
		users:       users,
		ledger:      ledger,
		kafkaWriter: kafkaWriter,
		metrics:     metrics,
		afterCommit: func(_ context.Context, fn func()) { fn() },
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithAfterCommit makes success metrics and ledger events wait for the
// transaction commit, so a rolled back borrow or return is never announced.
func (s *BorrowService) WithAfterCommit(hook AfterCommitFunc) *BorrowService {
	if hook != nil {
		s.afterCommit = hook
	}
	return s
}

// Borrow issues bookID to borrowedBy on behalf of issuedBy and returns the
// new record with both usernames filled in.
func (s *BorrowService) Borrow(ctx context.Context, bookID, borrowedBy, issuedBy int64, dueAt *time.Time) (*models.BorrowRecord, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil || book.IsDeleted {
		return nil, s.reject(ReasonBookNotFound, ErrBookNotFound)
	}

	borrower, err := s.users.GetByID(ctx, borrowedBy)
	if err != nil {
		logger.Log.Errorw("failed to get borrower", "userID", borrowedBy, "error", err)
		return nil, err
	}
	if borrower == nil {
		return nil, s.reject(ReasonBorrowerNotFound, ErrBorrowerNotFound)
	}

	issuer, err := s.users.GetByID(ctx, issuedBy)
	if err != nil {
		logger.Log.Errorw("failed to get issuer", "userID", issuedBy, "error", err)
		return nil, err
	}
	if issuer == nil {
		return nil, s.reject(ReasonIssuerNotFound, ErrIssuerNotFound)
	}

	active, err := s.ledger.GetActiveByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get active borrow", "bookID", bookID, "error", err)
		return nil, err
	}
	if active != nil {
		return nil, s.reject(ReasonAlreadyBorrowed, ErrAlreadyBorrowed)
	}

	now := s.now()
	overdue, err := s.ledger.HasOverdue(ctx, borrowedBy, now)
	if err != nil {
		logger.Log.Errorw("failed to check overdue borrows", "userID", borrowedBy, "error", err)
		return nil, err
	}
	if overdue {
		return nil, s.reject(ReasonOverdue, ErrBorrowerHasOverdue)
	}

	rec := &models.BorrowRecord{
		BookID:             &bookID,
		BorrowedByUserID:   borrowedBy,
		BorrowedByUsername: borrower.Username,
		IssuedByUserID:     issuedBy,
		IssuedByUsername:   issuer.Username,
		BorrowedAt:         now,
		IssuedAt:           now,
		DueAt:              dueAt,
	}

	if err := s.ledger.Add(ctx, rec); err != nil {
		if errors.Is(err, models.ErrActiveBorrowConflict) {
			logger.Log.Warnw("concurrent borrow lost the race", "bookID", bookID)
			return nil, s.reject(ReasonAlreadyBorrowed, ErrAlreadyBorrowed)
		}
		logger.Log.Errorw("failed to add borrow record", "bookID", bookID, "error", err)
		return nil, err
	}

	event := *rec
	s.afterCommit(ctx, func() {
		if s.metrics != nil {
			s.metrics.BookBorrowed()
		}
		s.publish(ctx, models.BorrowEventBorrowed, &event, now)
	})

	return rec, nil
}

// Return closes the active record of bookID. A second call for the same
// book fails with ErrActiveBorrowNotFound.
func (s *BorrowService) Return(ctx context.Context, bookID, issuedBy int64) error {
	issuer, err := s.users.GetByID(ctx, issuedBy)
	if err != nil {
		logger.Log.Errorw("failed to get issuer", "userID", issuedBy, "error", err)
		return err
	}
	if issuer == nil {
		return s.reject(ReasonIssuerNotFound, ErrIssuerNotFound)
	}

	active, err := s.ledger.GetActiveByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get active borrow", "bookID", bookID, "error", err)
		return err
	}
	if active == nil {
		return s.reject(ReasonNotBorrowed, ErrActiveBorrowNotFound)
	}

	now := s.now()
	if err := s.ledger.MarkReturned(ctx, active.ID, now); err != nil {
		if errors.Is(err, models.ErrBorrowNotActive) {
			return s.reject(ReasonNotBorrowed, ErrActiveBorrowNotFound)
		}
		logger.Log.Errorw("failed to mark record returned", "recordID", active.ID, "error", err)
		return err
	}
	active.ReturnedAt = &now

	s.afterCommit(ctx, func() {
		if s.metrics != nil {
			s.metrics.BookReturned()
		}
		s.publish(ctx, models.BorrowEventReturned, active, now)
	})

	return nil
}

// ListActive returns every record that has not been returned.
func (s *BorrowService) ListActive(ctx context.Context) ([]models.BorrowRecord, error) {
	records, err := s.ledger.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active borrows", "error", err)
		return nil, err
	}
	return records, nil
}

func (s *BorrowService) reject(reason string, err error) error {
	if s.metrics != nil {
		s.metrics.BorrowRejected(reason)
	}
	return err
}

// publish sends a ledger event to Kafka. Failures are logged and never fail the request.
func (s *BorrowService) publish(ctx context.Context, eventType string, rec *models.BorrowRecord, at time.Time) {
	event := models.BorrowEvent{
		EventID:          uuid.NewString(),
		Type:             eventType,
		RecordID:         rec.ID,
		BookID:           rec.BookID,
		BorrowedByUserID: rec.BorrowedByUserID,
		IssuedByUserID:   rec.IssuedByUserID,
		DueAt:            rec.DueAt,
		OccurredAt:       at,
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal borrow event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	var key []byte
	if rec.BookID != nil {
		key = []byte(strconv.FormatInt(*rec.BookID, 10))
	}

	msg := kafka.Message{
		Key:   key,
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish borrow event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Borrow event published to Kafka", "event_id", event.EventID, "type", eventType, "record_id", rec.ID)
	}
}
