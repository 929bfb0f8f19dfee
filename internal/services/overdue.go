package services

import (
	"context"
	"math"
	"time"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=overdue.go -destination=overdue_mock.go -package=services

// OverdueReader defines the overdue query surface of the ledger.
type OverdueReader interface {
	ListOverdue(ctx context.Context, filter models.OverdueFilter, now time.Time) ([]models.OverdueBorrow, int, error)
	CountOverdue(ctx context.Context, userID *int64, now time.Time) (int, error)
}

// OverdueService reports active records whose due date has passed.
// Overdue state is evaluated against the clock at query time.
type OverdueService struct {
	reader OverdueReader
	now    func() time.Time
}

func NewOverdueService(reader OverdueReader) *OverdueService {
	return &OverdueService{
		reader: reader,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns one page of overdue records ordered by due date descending.
func (s *OverdueService) List(ctx context.Context, filter models.OverdueFilter) (*models.Page[models.OverdueBorrow], error) {
	filter.PageNumber, filter.PageSize = models.NormalizePaging(filter.PageNumber, filter.PageSize)
	now := s.now()

	rows, total, err := s.reader.ListOverdue(ctx, filter, now)
	if err != nil {
		logger.Log.Errorw("failed to list overdue borrows", "filter", filter, "error", err)
		return nil, err
	}

	for i := range rows {
		rows[i].DaysOverdue = DaysOverdue(rows[i].DueAt, now)
	}

	return &models.Page[models.OverdueBorrow]{
		Items:      rows,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
		TotalCount: total,
	}, nil
}

// Count returns the number of overdue records, optionally for one borrower.
func (s *OverdueService) Count(ctx context.Context, userID *int64) (int, error) {
	n, err := s.reader.CountOverdue(ctx, userID, s.now())
	if err != nil {
		logger.Log.Errorw("failed to count overdue borrows", "userID", userID, "error", err)
		return 0, err
	}
	return n, nil
}

// DaysOverdue is the number of whole days between dueAt and now.
func DaysOverdue(dueAt, now time.Time) int {
	days := int(math.Floor(now.Sub(dueAt).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
