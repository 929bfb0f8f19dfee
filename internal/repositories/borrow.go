package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
)

const borrowSelect = `
	SELECT r.id, r.book_id,
	       r.borrowed_by_user_id, bu.username AS borrowed_by_username,
	       r.issued_by_user_id, iu.username AS issued_by_username,
	       r.borrowed_at, r.issued_at, r.due_at, r.returned_at
	FROM borrow_records r
	JOIN users bu ON bu.id = r.borrowed_by_user_id
	JOIN users iu ON iu.id = r.issued_by_user_id
`

// BorrowRepository is the borrow ledger. Records are appended by Add and
// mutated exactly once by MarkReturned; nothing is ever deleted.
type BorrowRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBorrowRepository(db *sqlx.DB, txGetter TxGetter) *BorrowRepository {
	return &BorrowRepository{db: db, txGetter: txGetter}
}

// GetActiveByBook returns the unreturned record of a book, or nil.
func (r *BorrowRepository) GetActiveByBook(ctx context.Context, bookID int64) (*models.BorrowRecord, error) {
	query := borrowSelect + ` WHERE r.book_id = $1 AND r.returned_at IS NULL`
	return r.getOne(ctx, query, bookID)
}

// GetByID returns a record by id, or nil.
func (r *BorrowRepository) GetByID(ctx context.Context, id int64) (*models.BorrowRecord, error) {
	query := borrowSelect + ` WHERE r.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *BorrowRepository) getOne(ctx context.Context, query string, arg any) (*models.BorrowRecord, error) {
	var rec models.BorrowRecord
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rec, query, arg)

	logQuery(query, []any{arg}, rec.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Add appends a record and sets its ID. A second active record for the same
// book violates ux_borrow_records_active_book and yields models.ErrActiveBorrowConflict.
func (r *BorrowRepository) Add(ctx context.Context, rec *models.BorrowRecord) error {
	const query = `
		INSERT INTO borrow_records (book_id, borrowed_by_user_id, issued_by_user_id, borrowed_at, issued_at, due_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{rec.BookID, rec.BorrowedByUserID, rec.IssuedByUserID, rec.BorrowedAt, rec.IssuedAt, rec.DueAt}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if isUniqueViolation(err, constraintActiveBorrow) {
		return models.ErrActiveBorrowConflict
	}
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

// MarkReturned sets returned_at on an active record. If the record was
// already returned, models.ErrBorrowNotActive is returned.
func (r *BorrowRepository) MarkReturned(ctx context.Context, id int64, returnedAt time.Time) error {
	const query = `
		UPDATE borrow_records
		SET returned_at = $2
		WHERE id = $1 AND returned_at IS NULL
	`
	args := []any{id, returnedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrBorrowNotActive
	}
	return nil
}

// ListActive returns every unreturned record, oldest first.
func (r *BorrowRepository) ListActive(ctx context.Context) ([]models.BorrowRecord, error) {
	query := borrowSelect + ` WHERE r.returned_at IS NULL ORDER BY r.borrowed_at, r.id`

	records := []models.BorrowRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query)

	logQuery(query, nil, len(records), err)

	return records, err
}

// ActiveBookIDs returns the subset of bookIDs that currently have an active record.
func (r *BorrowRepository) ActiveBookIDs(ctx context.Context, bookIDs []int64) (map[int64]struct{}, error) {
	active := make(map[int64]struct{}, len(bookIDs))
	if len(bookIDs) == 0 {
		return active, nil
	}

	query, args, err := builder().
		From(tableBorrowRecords).
		Prepared(true).
		Select(goqu.C("book_id")).
		Where(goqu.C("returned_at").IsNull(), goqu.C("book_id").In(bookIDs)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var ids []int64
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, args...)

	logQuery(query, args, len(ids), err)

	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		active[id] = struct{}{}
	}
	return active, nil
}

// HasOverdue reports whether userID holds any active record due before now.
func (r *BorrowRepository) HasOverdue(ctx context.Context, userID int64, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM borrow_records
			WHERE borrowed_by_user_id = $1
			  AND returned_at IS NULL
			  AND due_at IS NOT NULL
			  AND due_at < $2
		)
	`
	args := []any{userID, now}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

// ListOverdue returns one page of overdue records ordered by due date
// descending, along with the total count. Paging must already be normalized.
func (r *BorrowRepository) ListOverdue(ctx context.Context, filter models.OverdueFilter, now time.Time) ([]models.OverdueBorrow, int, error) {
	ds := r.overdue(filter.UserID, filter.Search, now)
	ext := executor(ctx, r.db, r.txGetter)

	total, err := r.count(ctx, ext, ds)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := ds.
		Select(
			goqu.I("r.id").As("borrow_id"),
			goqu.I("r.book_id"),
			goqu.I("b.title").As("book_title"),
			goqu.I("b.isbn"),
			goqu.I("r.borrowed_by_user_id"),
			goqu.I("u.username").As("borrowed_by_username"),
			goqu.I("r.borrowed_at"),
			goqu.I("r.due_at"),
		).
		Order(goqu.I("r.due_at").Desc(), goqu.I("r.id").Desc()).
		Offset(uint(models.Offset(filter.PageNumber, filter.PageSize))).
		Limit(uint(filter.PageSize)).
		ToSQL()
	if err != nil {
		return nil, 0, err
	}

	rows := []models.OverdueBorrow{}
	err = sqlx.SelectContext(ctx, ext, &rows, query, args...)

	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountOverdue counts overdue records, optionally for a single borrower.
func (r *BorrowRepository) CountOverdue(ctx context.Context, userID *int64, now time.Time) (int, error) {
	return r.count(ctx, executor(ctx, r.db, r.txGetter), r.overdue(userID, "", now))
}

func (r *BorrowRepository) count(ctx context.Context, ext sqlx.ExtContext, ds *goqu.SelectDataset) (int, error) {
	query, args, err := ds.Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return 0, err
	}

	var total int
	err = sqlx.GetContext(ctx, ext, &total, query, args...)

	logQuery(query, args, total, err)

	return total, err
}

// overdue composes the dataset of active records whose due date lies before now.
func (r *BorrowRepository) overdue(userID *int64, search string, now time.Time) *goqu.SelectDataset {
	ds := builder().
		From(goqu.T(tableBorrowRecords).As("r")).
		Prepared(true).
		LeftJoin(goqu.T(tableBooks).As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("r.book_id")))).
		InnerJoin(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.borrowed_by_user_id")))).
		Where(
			goqu.I("r.returned_at").IsNull(),
			goqu.I("r.due_at").IsNotNull(),
			goqu.I("r.due_at").Lt(now),
		)

	if userID != nil {
		ds = ds.Where(goqu.I("r.borrowed_by_user_id").Eq(*userID))
	}

	if s := strings.TrimSpace(search); s != "" {
		pattern := containsPattern(s)
		ds = ds.Where(goqu.Or(
			goqu.I("b.title").ILike(pattern),
			goqu.I("b.isbn").ILike(pattern),
			goqu.I("u.username").ILike(pattern),
		))
	}

	return ds
}
