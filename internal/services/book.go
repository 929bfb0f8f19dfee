package services

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=book.go -destination=book_mock.go -package=services

// BookReader defines read operations on the catalog. Both lookups see soft-deleted books.
type BookReader interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, int, error)
}

// BookWriter defines write operations on the catalog.
type BookWriter interface {
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Save(ctx context.Context, book *models.Book) error
}

// BookService manages the catalog: listing with derived availability,
// creation with ISBN rules, and soft delete/restore.
type BookService struct {
	reader       BookReader
	writer       BookWriter
	availability *AvailabilityResolver
	policy       *bluemonday.Policy
	now          func() time.Time
}

// NewBookService creates a new BookService.
func NewBookService(reader BookReader, writer BookWriter, availability *AvailabilityResolver) *BookService {
	return &BookService{
		reader:       reader,
		writer:       writer,
		availability: availability,
		policy:       bluemonday.StrictPolicy(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GetByID returns a book with its availability. Deleted books are only
// returned when includeDeleted is set.
func (s *BookService) GetByID(ctx context.Context, id int64, includeDeleted bool) (*models.Book, error) {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "error", err)
		return nil, err
	}
	if book == nil || (book.IsDeleted && !includeDeleted) {
		return nil, ErrBookNotFound
	}

	if err := s.availability.Resolve(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// List returns a page of books. Without includeDeleted the IsDeleted filter
// is forced to false.
func (s *BookService) List(ctx context.Context, filter models.BookFilter, includeDeleted bool) (*models.Page[models.Book], error) {
	filter.PageNumber, filter.PageSize = models.NormalizePaging(filter.PageNumber, filter.PageSize)
	if !includeDeleted {
		notDeleted := false
		filter.IsDeleted = &notDeleted
	}

	books, total, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list books", "filter", filter, "error", err)
		return nil, err
	}

	if err := s.availability.ResolveAll(ctx, books); err != nil {
		return nil, err
	}

	return &models.Page[models.Book]{
		Items:      books,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
		TotalCount: total,
	}, nil
}

// Create adds a book. An ISBN held by a deleted book yields ErrISBNDeleted so
// the caller can suggest a restore.
func (s *BookService) Create(ctx context.Context, input models.BookInput) (*models.Book, error) {
	book := s.fromInput(input)

	existing, err := s.reader.GetByISBN(ctx, book.ISBN)
	if err != nil {
		logger.Log.Errorw("failed to check isbn", "isbn", book.ISBN, "error", err)
		return nil, err
	}
	if existing != nil {
		if existing.IsDeleted {
			return nil, ErrISBNDeleted
		}
		return nil, ErrISBNExists
	}

	if err := s.writer.Create(ctx, book); err != nil {
		if errors.Is(err, models.ErrISBNConflict) {
			return nil, ErrISBNExists
		}
		logger.Log.Errorw("failed to create book", "isbn", book.ISBN, "error", err)
		return nil, err
	}

	book.IsAvailable = true
	return book, nil
}

// Update overwrites the descriptive fields of a book. The ISBN is only
// checked for conflicts when it actually changes.
func (s *BookService) Update(ctx context.Context, id int64, input models.BookInput) error {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "error", err)
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	updated := s.fromInput(input)
	if !strings.EqualFold(book.ISBN, updated.ISBN) {
		existing, err := s.reader.GetByISBN(ctx, updated.ISBN)
		if err != nil {
			logger.Log.Errorw("failed to check isbn", "isbn", updated.ISBN, "error", err)
			return err
		}
		if existing != nil {
			return ErrISBNExists
		}
	}

	book.Title = updated.Title
	book.Author = updated.Author
	book.Genre = updated.Genre
	book.PublicationYear = updated.PublicationYear
	book.ISBN = updated.ISBN
	book.Price = updated.Price

	if err := s.writer.Update(ctx, book); err != nil {
		if errors.Is(err, models.ErrISBNConflict) {
			return ErrISBNExists
		}
		logger.Log.Errorw("failed to update book", "id", id, "error", err)
		return err
	}
	return nil
}

// Delete soft-deletes a book on behalf of deletedBy.
func (s *BookService) Delete(ctx context.Context, id, deletedBy int64) error {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "error", err)
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	now := s.now()
	book.IsDeleted = true
	book.DeletedAt = &now
	book.DeletedByUserID = &deletedBy

	if err := s.writer.Save(ctx, book); err != nil {
		logger.Log.Errorw("failed to delete book", "id", id, "error", err)
		return err
	}
	return nil
}

// Restore clears the deletion state of a deleted book.
func (s *BookService) Restore(ctx context.Context, id, restoredBy int64) error {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "error", err)
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	if !book.IsDeleted {
		return ErrBookNotDeleted
	}

	book.IsDeleted = false
	book.DeletedAt = nil
	book.DeletedByUserID = nil

	if err := s.writer.Save(ctx, book); err != nil {
		logger.Log.Errorw("failed to restore book", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("book restored", "id", id, "restoredBy", restoredBy)
	return nil
}

func (s *BookService) fromInput(input models.BookInput) *models.Book {
	return &models.Book{
		Title:           s.clean(input.Title),
		Author:          s.clean(input.Author),
		Genre:           s.clean(input.Genre),
		PublicationYear: input.PublicationYear,
		ISBN:            s.clean(input.ISBN),
		Price:           input.Price,
	}
}

// maxSanitizePasses bounds how many layers of entity encoding clean unwraps.
const maxSanitizePasses = 3

// clean trims v and strips any markup, including markup hidden behind HTML
// entities. Text is decoded before every pass and only returned decoded once
// the policy leaves it unchanged, so "Tom & Jerry" survives while
// "&lt;script&gt;" does not. Input that never settles is returned escaped.
func (s *BookService) clean(v string) string {
	v = strings.TrimSpace(v)
	for i := 0; i < maxSanitizePasses; i++ {
		decoded := html.UnescapeString(v)
		sanitized := s.policy.Sanitize(decoded)
		if html.UnescapeString(sanitized) == decoded {
			return strings.TrimSpace(decoded)
		}
		v = sanitized
	}
	return strings.TrimSpace(v)
}
