package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `title,author,genre,publication_year,isbn,price
Clean Code,Robert C. Martin,Programming,2008,9780132350884,40.00
"Refactoring, 2nd Edition",Martin Fowler,Programming,2018,9780134757599,
`

func TestParseBooksCSV(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		inputs, err := parseBooksCSV(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, inputs, 2)

		assert.Equal(t, models.BookInput{
			Title:           "Clean Code",
			Author:          "Robert C. Martin",
			Genre:           "Programming",
			PublicationYear: 2008,
			ISBN:            "9780132350884",
			Price:           40,
		}, inputs[0])
		assert.Equal(t, "Refactoring, 2nd Edition", inputs[1].Title)
		assert.Zero(t, inputs[1].Price)
	})

	t.Run("columns in any order", func(t *testing.T) {
		inputs, err := parseBooksCSV(strings.NewReader("ISBN,Price,Title,Author,Genre,Publication_Year\n111,9.5,Dune,Frank Herbert,Science Fiction,1965\n"))
		require.NoError(t, err)
		require.Len(t, inputs, 1)
		assert.Equal(t, "111", inputs[0].ISBN)
		assert.Equal(t, 1965, inputs[0].PublicationYear)
	})

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty file", "", "empty CSV file"},
		{"missing column", "title,author,genre,isbn,price\n", `missing column "publication_year"`},
		{"bad year", "title,author,genre,publication_year,isbn,price\nA,B,C,soon,1,1\n", `line 2: invalid publication_year "soon"`},
		{"bad price", "title,author,genre,publication_year,isbn,price\nA,B,C,2000,1,free\n", `line 2: invalid price "free"`},
		{"missing title", "title,author,genre,publication_year,isbn,price\n,B,C,2000,1,1\n", "line 2: invalid field Title"},
		{"negative price", "title,author,genre,publication_year,isbn,price\nA,B,C,2000,1,-3\n", "line 2: invalid field Price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBooksCSV(strings.NewReader(tt.data))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestImportBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	inputs := []models.BookInput{
		{Title: "A", ISBN: "1"},
		{Title: "B", ISBN: "2"},
		{Title: "C", ISBN: "3"},
	}

	t.Run("skips taken isbns", func(t *testing.T) {
		books := NewMockBookCreator(ctrl)
		gomock.InOrder(
			books.EXPECT().Create(ctx, inputs[0]).Return(&models.Book{ID: 1}, nil),
			books.EXPECT().Create(ctx, inputs[1]).Return(nil, services.ErrISBNExists),
			books.EXPECT().Create(ctx, inputs[2]).Return(nil, services.ErrISBNDeleted),
		)

		var out bytes.Buffer
		res, err := importBooks(ctx, books, inputs, &out)
		require.NoError(t, err)
		assert.Equal(t, importResult{Imported: 1, Skipped: 2}, res)
		assert.Contains(t, out.String(), "added 1 1 (A)")
		assert.Contains(t, out.String(), "skip 2 (B)")
	})

	t.Run("stops on failure", func(t *testing.T) {
		books := NewMockBookCreator(ctrl)
		books.EXPECT().Create(ctx, inputs[0]).Return(nil, errors.New("db down"))

		res, err := importBooks(ctx, books, inputs, io.Discard)
		assert.ErrorContains(t, err, `import "A": db down`)
		assert.Zero(t, res.Imported)
	})
}

func fakeBackend(books BookCreator, users UserRegisterer, closed *bool) opener {
	return func(_ context.Context, _ string) (*backend, error) {
		return &backend{books: books, users: users, close: func() { *closed = true }}, nil
	}
}

func staticPassword(p string) passwordReader {
	return func(io.Reader, io.Writer) (string, error) { return p, nil }
}

func execute(t *testing.T, open opener, password passwordReader, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(open, password)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportBooksCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	books := NewMockBookCreator(ctrl)
	books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Book{ID: 7}, nil).Times(2)

	var closed bool
	out, err := execute(t, fakeBackend(books, nil, &closed), nil, "import-books", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported: 2, skipped: 0")
	assert.True(t, closed)

	t.Run("file flag required", func(t *testing.T) {
		_, err := execute(t, fakeBackend(books, nil, &closed), nil, "import-books")
		assert.Error(t, err)
	})
}

func TestCreateUserCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("created", func(t *testing.T) {
		users := NewMockUserRegisterer(ctrl)
		users.EXPECT().Register(gomock.Any(), "alice", "secret123", models.RoleAdmin).
			Return(&models.User{ID: 3, Username: "alice", Role: models.RoleAdmin}, nil)

		var closed bool
		out, err := execute(t, fakeBackend(nil, users, &closed), staticPassword("secret123"),
			"create-user", "--username", "alice", "--role", "Admin")
		require.NoError(t, err)
		assert.Equal(t, "Created user alice (id 3, role Admin)\n", out)
		assert.True(t, closed)
	})

	t.Run("already exists", func(t *testing.T) {
		users := NewMockUserRegisterer(ctrl)
		users.EXPECT().Register(gomock.Any(), "bob", "secret123", models.RoleUser).
			Return(nil, services.ErrUserAlreadyExists)

		var closed bool
		_, err := execute(t, fakeBackend(nil, users, &closed), staticPassword("secret123"),
			"create-user", "-u", "bob")
		assert.EqualError(t, err, `user "bob" already exists`)
	})

	t.Run("invalid role", func(t *testing.T) {
		var closed bool
		_, err := execute(t, fakeBackend(nil, nil, &closed), staticPassword("secret123"),
			"create-user", "-u", "bob", "-r", "Librarian")
		assert.ErrorIs(t, err, services.ErrInvalidRole)
		assert.False(t, closed)
	})

	t.Run("short password", func(t *testing.T) {
		var closed bool
		_, err := execute(t, fakeBackend(nil, nil, &closed), staticPassword("abc"),
			"create-user", "-u", "bob")
		assert.ErrorContains(t, err, "at least 6 characters")
		assert.False(t, closed)
	})
}

func TestReadPassword_Piped(t *testing.T) {
	p, err := readPassword(strings.NewReader("  hunter22\nignored\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "hunter22", p)
}
