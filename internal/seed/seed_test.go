package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedMocks struct {
	users    *MockUserCounter
	register *MockUserRegisterer
	books    *MockBookLister
	creator  *MockBookCreator
}

func newSeeder(t *testing.T, seedBooks bool) (*Seeder, *seedMocks) {
	ctrl := gomock.NewController(t)
	m := &seedMocks{
		users:    NewMockUserCounter(ctrl),
		register: NewMockUserRegisterer(ctrl),
		books:    NewMockBookLister(ctrl),
		creator:  NewMockBookCreator(ctrl),
	}
	opts := Options{
		AdminUsername:   "admin",
		AdminPassword:   "Admin@123",
		DefaultUsername: "user",
		DefaultPassword: "User@123",
		SeedBooks:       seedBooks,
	}
	return NewSeeder(m.users, m.register, m.books, m.creator, opts), m
}

func TestSeeder_EmptyDatabase(t *testing.T) {
	s, m := newSeeder(t, true)
	ctx := context.Background()

	m.users.EXPECT().CountByRole(ctx, models.RoleAdmin).Return(0, nil)
	m.register.EXPECT().Register(ctx, "admin", "Admin@123", models.RoleAdmin).Return(&models.User{ID: 1}, nil)
	m.users.EXPECT().CountByRole(ctx, models.RoleUser).Return(0, nil)
	m.register.EXPECT().Register(ctx, "user", "User@123", models.RoleUser).Return(&models.User{ID: 2}, nil)
	m.books.EXPECT().List(ctx, models.BookFilter{PageNumber: 1, PageSize: 1}).Return(nil, 0, nil)
	m.creator.EXPECT().Create(ctx, gomock.Any()).Return(&models.Book{}, nil).Times(len(SampleBooks()))

	require.NoError(t, s.Run(ctx))
}

func TestSeeder_AlreadySeeded(t *testing.T) {
	s, m := newSeeder(t, true)
	ctx := context.Background()

	m.users.EXPECT().CountByRole(ctx, models.RoleAdmin).Return(1, nil)
	m.users.EXPECT().CountByRole(ctx, models.RoleUser).Return(4, nil)
	m.books.EXPECT().List(ctx, gomock.Any()).Return([]models.Book{{ID: 1}}, 10, nil)

	require.NoError(t, s.Run(ctx))
}

func TestSeeder_BooksDisabled(t *testing.T) {
	s, m := newSeeder(t, false)
	ctx := context.Background()

	m.users.EXPECT().CountByRole(ctx, gomock.Any()).Return(1, nil).Times(2)

	require.NoError(t, s.Run(ctx))
}

func TestSeeder_UsernameTaken(t *testing.T) {
	s, m := newSeeder(t, false)
	ctx := context.Background()

	m.users.EXPECT().CountByRole(ctx, models.RoleAdmin).Return(1, nil)
	m.users.EXPECT().CountByRole(ctx, models.RoleUser).Return(0, nil)
	m.register.EXPECT().Register(ctx, "user", "User@123", models.RoleUser).Return(nil, services.ErrUserAlreadyExists)

	require.NoError(t, s.Run(ctx))
}

func TestSeeder_SkipsExistingISBN(t *testing.T) {
	s, m := newSeeder(t, true)
	ctx := context.Background()

	m.users.EXPECT().CountByRole(ctx, gomock.Any()).Return(1, nil).Times(2)
	m.books.EXPECT().List(ctx, gomock.Any()).Return(nil, 0, nil)
	m.creator.EXPECT().Create(ctx, gomock.Any()).Return(nil, services.ErrISBNDeleted)
	m.creator.EXPECT().Create(ctx, gomock.Any()).Return(&models.Book{}, nil).Times(len(SampleBooks()) - 1)

	require.NoError(t, s.Run(ctx))
}

func TestSeeder_Errors(t *testing.T) {
	t.Run("count fails", func(t *testing.T) {
		s, m := newSeeder(t, true)
		m.users.EXPECT().CountByRole(gomock.Any(), models.RoleAdmin).Return(0, errors.New("db down"))

		err := s.Run(context.Background())
		assert.ErrorContains(t, err, "count Admin users")
	})

	t.Run("book create fails", func(t *testing.T) {
		s, m := newSeeder(t, true)
		m.users.EXPECT().CountByRole(gomock.Any(), gomock.Any()).Return(1, nil).Times(2)
		m.books.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
		m.creator.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		err := s.Run(context.Background())
		assert.ErrorContains(t, err, `seed book "Clean Code"`)
	})
}

func TestSampleBooks(t *testing.T) {
	books := SampleBooks()
	assert.Len(t, books, 10)

	seen := map[string]bool{}
	for _, b := range books {
		assert.False(t, seen[b.ISBN], "duplicate ISBN %s", b.ISBN)
		seen[b.ISBN] = true
	}
}
