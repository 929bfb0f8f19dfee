package services

import (
	"context"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=availability.go -destination=availability_mock.go -package=services

// ActiveBorrowReader exposes the parts of the borrow ledger availability depends on.
type ActiveBorrowReader interface {
	GetActiveByBook(ctx context.Context, bookID int64) (*models.BorrowRecord, error)
	ActiveBookIDs(ctx context.Context, bookIDs []int64) (map[int64]struct{}, error)
}

// AvailabilityResolver derives whether books can be borrowed right now.
// Nothing is cached: every call reads the ledger.
type AvailabilityResolver struct {
	ledger ActiveBorrowReader
}

func NewAvailabilityResolver(ledger ActiveBorrowReader) *AvailabilityResolver {
	return &AvailabilityResolver{ledger: ledger}
}

// IsAvailable is the availability rule: not deleted and not borrowed.
func IsAvailable(book models.Book, borrowed bool) bool {
	return !book.IsDeleted && !borrowed
}

// Resolve sets book.IsAvailable.
func (r *AvailabilityResolver) Resolve(ctx context.Context, book *models.Book) error {
	if book.IsDeleted {
		book.IsAvailable = false
		return nil
	}

	active, err := r.ledger.GetActiveByBook(ctx, book.ID)
	if err != nil {
		logger.Log.Errorw("failed to get active borrow", "bookID", book.ID, "error", err)
		return err
	}

	book.IsAvailable = IsAvailable(*book, active != nil)
	return nil
}

// ResolveAll sets IsAvailable on every book with a single ledger query.
func (r *AvailabilityResolver) ResolveAll(ctx context.Context, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	active, err := r.ledger.ActiveBookIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to get active book ids", "count", len(ids), "error", err)
		return err
	}

	for i := range books {
		_, borrowed := active[books[i].ID]
		books[i].IsAvailable = IsAvailable(books[i], borrowed)
	}
	return nil
}
