package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
)

const bookColumns = `id, title, author, genre, publication_year, isbn, price, is_deleted, deleted_at, deleted_by_user_id`

// BookRepository stores catalog rows. Lookups by id and ISBN see soft-deleted
// rows; deciding whether a deleted book is visible is up to the caller.
type BookRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookRepository(db *sqlx.DB, txGetter TxGetter) *BookRepository {
	return &BookRepository{db: db, txGetter: txGetter}
}

// GetByID returns the book with the given id, or nil when it does not exist.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByISBN returns the book holding isbn, or nil when none does.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	return r.getOne(ctx, query, isbn)
}

func (r *BookRepository) getOne(ctx context.Context, query string, arg any) (*models.Book, error) {
	var book models.Book
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, arg)

	logQuery(query, []any{arg}, book.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book and sets its ID.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	const query = `
		INSERT INTO books (title, author, genre, publication_year, isbn, price, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id
	`
	args := []any{book.Title, book.Author, book.Genre, book.PublicationYear, book.ISBN, book.Price}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if isUniqueViolation(err, constraintBookISBN) {
		return models.ErrISBNConflict
	}
	if err != nil {
		return err
	}

	book.ID = id
	return nil
}

// Update overwrites the descriptive fields of a book.
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, genre = $4, publication_year = $5, isbn = $6, price = $7
		WHERE id = $1
	`
	args := []any{book.ID, book.Title, book.Author, book.Genre, book.PublicationYear, book.ISBN, book.Price}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if isUniqueViolation(err, constraintBookISBN) {
		return models.ErrISBNConflict
	}
	return err
}

// Save persists the soft-delete state of a book.
func (r *BookRepository) Save(ctx context.Context, book *models.Book) error {
	const query = `
		UPDATE books
		SET is_deleted = $2, deleted_at = $3, deleted_by_user_id = $4
		WHERE id = $1
	`
	args := []any{book.ID, book.IsDeleted, book.DeletedAt, book.DeletedByUserID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// List returns one page of books matching filter, ordered by title, along
// with the total number of matches. PageNumber and PageSize must already be normalized.
func (r *BookRepository) List(ctx context.Context, filter models.BookFilter) ([]models.Book, int, error) {
	ds := r.query(filter)
	ext := executor(ctx, r.db, r.txGetter)

	countQuery, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = sqlx.GetContext(ctx, ext, &total, countQuery, countArgs...)
	logQuery(countQuery, countArgs, total, err)
	if err != nil {
		return nil, 0, err
	}

	pageQuery, pageArgs, err := ds.
		Select(
			goqu.I("b.id"), goqu.I("b.title"), goqu.I("b.author"), goqu.I("b.genre"),
			goqu.I("b.publication_year"), goqu.I("b.isbn"), goqu.I("b.price"),
			goqu.I("b.is_deleted"), goqu.I("b.deleted_at"), goqu.I("b.deleted_by_user_id"),
		).
		Order(goqu.I("b.title").Asc(), goqu.I("b.id").Asc()).
		Offset(uint(models.Offset(filter.PageNumber, filter.PageSize))).
		Limit(uint(filter.PageSize)).
		ToSQL()
	if err != nil {
		return nil, 0, err
	}

	books := []models.Book{}
	err = sqlx.SelectContext(ctx, ext, &books, pageQuery, pageArgs...)
	logQuery(pageQuery, pageArgs, len(books), err)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// query composes the filtered catalog dataset. Deleted rows are included
// unless filter.IsDeleted says otherwise.
func (r *BookRepository) query(filter models.BookFilter) *goqu.SelectDataset {
	ds := builder().From(goqu.T(tableBooks).As("b")).Prepared(true)

	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := containsPattern(s)
		ds = ds.Where(goqu.Or(
			goqu.I("b.title").ILike(pattern),
			goqu.I("b.author").ILike(pattern),
			goqu.I("b.genre").ILike(pattern),
		))
	}

	if g := strings.TrimSpace(filter.Genre); g != "" {
		ds = ds.Where(goqu.Func("LOWER", goqu.I("b.genre")).Eq(strings.ToLower(g)))
	}

	if filter.YearFrom != nil {
		ds = ds.Where(goqu.I("b.publication_year").Gte(*filter.YearFrom))
	}
	if filter.YearTo != nil {
		ds = ds.Where(goqu.I("b.publication_year").Lte(*filter.YearTo))
	}
	if filter.MinPrice != nil {
		ds = ds.Where(goqu.I("b.price").Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		ds = ds.Where(goqu.I("b.price").Lte(*filter.MaxPrice))
	}

	if filter.IsDeleted != nil {
		ds = ds.Where(goqu.I("b.is_deleted").Eq(*filter.IsDeleted))
	}

	if filter.IsAvailable != nil {
		active := activeBookIDs()
		if *filter.IsAvailable {
			ds = ds.Where(goqu.I("b.is_deleted").IsFalse(), goqu.I("b.id").NotIn(active))
		} else {
			ds = ds.Where(goqu.Or(goqu.I("b.is_deleted").IsTrue(), goqu.I("b.id").In(active)))
		}
	}

	return ds
}

// activeBookIDs selects the ids of books that are currently borrowed.
func activeBookIDs() *goqu.SelectDataset {
	return builder().
		From(tableBorrowRecords).
		Select(goqu.C("book_id")).
		Where(goqu.C("returned_at").IsNull(), goqu.C("book_id").IsNotNull())
}
