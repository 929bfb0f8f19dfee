package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookMocks struct {
	reader *services.MockBookReader
	writer *services.MockBookWriter
	ledger *services.MockActiveBorrowReader
	svc    *services.BookService
}

func newBookMocks(t *testing.T) *bookMocks {
	ctrl := gomock.NewController(t)
	m := &bookMocks{
		reader: services.NewMockBookReader(ctrl),
		writer: services.NewMockBookWriter(ctrl),
		ledger: services.NewMockActiveBorrowReader(ctrl),
	}
	m.svc = services.NewBookService(m.reader, m.writer, services.NewAvailabilityResolver(m.ledger))
	return m
}

func validInput() models.BookInput {
	return models.BookInput{
		Title:           "  Clean Code ",
		Author:          "Robert C. Martin",
		Genre:           "Programming",
		PublicationYear: 2008,
		ISBN:            " 9780132350884 ",
		Price:           40,
	}
}

func TestBookService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("available book", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Book{ID: 1}, nil)
		m.ledger.EXPECT().GetActiveByBook(gomock.Any(), int64(1)).Return(nil, nil)

		book, err := m.svc.GetByID(ctx, 1, false)
		require.NoError(t, err)
		assert.True(t, book.IsAvailable)
	})

	t.Run("borrowed book", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Book{ID: 1}, nil)
		m.ledger.EXPECT().GetActiveByBook(gomock.Any(), int64(1)).Return(&models.BorrowRecord{ID: 9}, nil)

		book, err := m.svc.GetByID(ctx, 1, false)
		require.NoError(t, err)
		assert.False(t, book.IsAvailable)
	})

	t.Run("missing", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

		_, err := m.svc.GetByID(ctx, 2, true)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})

	t.Run("deleted hidden from users", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Book{ID: 3, IsDeleted: true}, nil)

		_, err := m.svc.GetByID(ctx, 3, false)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})

	t.Run("deleted visible to admins and unavailable", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Book{ID: 3, IsDeleted: true}, nil)

		book, err := m.svc.GetByID(ctx, 3, true)
		require.NoError(t, err)
		assert.False(t, book.IsAvailable)
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes paging and hides deleted", func(t *testing.T) {
		m := newBookMocks(t)
		books := []models.Book{{ID: 1}, {ID: 2}, {ID: 3, IsDeleted: true}}

		m.reader.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.BookFilter) ([]models.Book, int, error) {
				assert.Equal(t, 1, f.PageNumber)
				assert.Equal(t, models.MaxPageSize, f.PageSize)
				require.NotNil(t, f.IsDeleted)
				assert.False(t, *f.IsDeleted)
				return books, 3, nil
			})
		m.ledger.EXPECT().ActiveBookIDs(gomock.Any(), []int64{1, 2, 3}).
			Return(map[int64]struct{}{2: {}}, nil)

		isDeleted := true
		page, err := m.svc.List(ctx, models.BookFilter{PageNumber: -5, PageSize: 500, IsDeleted: &isDeleted}, false)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Equal(t, models.MaxPageSize, page.PageSize)
		assert.True(t, page.Items[0].IsAvailable)
		assert.False(t, page.Items[1].IsAvailable)
		assert.False(t, page.Items[2].IsAvailable)
	})

	t.Run("admins keep their deleted filter", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.BookFilter) ([]models.Book, int, error) {
				assert.Nil(t, f.IsDeleted)
				assert.Equal(t, models.DefaultPageSize, f.PageSize)
				return []models.Book{}, 0, nil
			})

		page, err := m.svc.List(ctx, models.BookFilter{}, true)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("ledger error", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Book{{ID: 1}}, 1, nil)
		m.ledger.EXPECT().ActiveBookIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := m.svc.List(ctx, models.BookFilter{}, false)
		assert.Error(t, err)
	})
}

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims fields", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByISBN(gomock.Any(), "9780132350884").Return(nil, nil)
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Book) error {
				b.ID = 5
				return nil
			})

		book, err := m.svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, int64(5), book.ID)
		assert.Equal(t, "Clean Code", book.Title)
		assert.True(t, book.IsAvailable)
	})

	t.Run("strips markup", func(t *testing.T) {
		m := newBookMocks(t)
		in := validInput()
		in.Title = `<script>alert(1)</script>Tom & Jerry <b>Tales</b>`

		m.reader.EXPECT().GetByISBN(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		book, err := m.svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "Tom & Jerry Tales", book.Title)
	})

	t.Run("strips entity encoded markup", func(t *testing.T) {
		m := newBookMocks(t)
		in := validInput()
		in.Title = `&lt;script&gt;alert(1)&lt;/script&gt;Dune`
		in.Author = `&lt;b&gt;Frank&lt;/b&gt; Herbert &amp; Co`

		m.reader.EXPECT().GetByISBN(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		book, err := m.svc.Create(ctx, in)
		require.NoError(t, err)
		assert.NotContains(t, book.Title, "<script>")
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Frank Herbert & Co", book.Author)
	})

	t.Run("isbn taken", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByISBN(gomock.Any(), gomock.Any()).Return(&models.Book{ID: 1}, nil)

		_, err := m.svc.Create(ctx, validInput())
		assert.ErrorIs(t, err, services.ErrISBNExists)
	})

	t.Run("isbn of deleted book", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByISBN(gomock.Any(), gomock.Any()).Return(&models.Book{ID: 1, IsDeleted: true}, nil)

		_, err := m.svc.Create(ctx, validInput())
		assert.ErrorIs(t, err, services.ErrISBNDeleted)
	})

	t.Run("isbn taken concurrently", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByISBN(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ErrISBNConflict)

		_, err := m.svc.Create(ctx, validInput())
		assert.ErrorIs(t, err, services.ErrISBNExists)
	})
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("same isbn different case skips conflict check", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.Book{ID: 1, ISBN: "978013235088X"}, nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Book) error {
				assert.Equal(t, "Clean Code", b.Title)
				assert.Equal(t, "978013235088x", b.ISBN)
				return nil
			})

		in := validInput()
		in.ISBN = "978013235088x"
		assert.NoError(t, m.svc.Update(ctx, 1, in))
	})

	t.Run("changed isbn conflicts", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Book{ID: 1, ISBN: "111"}, nil)
		m.reader.EXPECT().GetByISBN(gomock.Any(), "9780132350884").Return(&models.Book{ID: 2, IsDeleted: true}, nil)

		assert.ErrorIs(t, m.svc.Update(ctx, 1, validInput()), services.ErrISBNExists)
	})

	t.Run("missing", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)

		assert.ErrorIs(t, m.svc.Update(ctx, 1, validInput()), services.ErrBookNotFound)
	})
}

func TestBookService_DeleteRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("delete stamps actor and time", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Book{ID: 1}, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Book) error {
				assert.True(t, b.IsDeleted)
				require.NotNil(t, b.DeletedAt)
				assert.WithinDuration(t, time.Now(), *b.DeletedAt, time.Minute)
				assert.Equal(t, int64(9), *b.DeletedByUserID)
				return nil
			})

		assert.NoError(t, m.svc.Delete(ctx, 1, 9))
	})

	t.Run("delete missing", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)

		assert.ErrorIs(t, m.svc.Delete(ctx, 1, 9), services.ErrBookNotFound)
	})

	t.Run("restore clears deletion", func(t *testing.T) {
		m := newBookMocks(t)
		at := time.Now()
		by := int64(9)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.Book{ID: 1, IsDeleted: true, DeletedAt: &at, DeletedByUserID: &by}, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Book) error {
				assert.False(t, b.IsDeleted)
				assert.Nil(t, b.DeletedAt)
				assert.Nil(t, b.DeletedByUserID)
				return nil
			})

		assert.NoError(t, m.svc.Restore(ctx, 1, 9))
	})

	t.Run("restore of live book", func(t *testing.T) {
		m := newBookMocks(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Book{ID: 1}, nil)

		assert.ErrorIs(t, m.svc.Restore(ctx, 1, 9), services.ErrBookNotDeleted)
	})
}
