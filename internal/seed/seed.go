// Package seed fills an empty database with the default accounts and a starter catalog.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
)

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=seed

// UserCounter reports how many users hold a role.
type UserCounter interface {
	CountByRole(ctx context.Context, role string) (int, error)
}

// UserRegisterer creates users with hashed passwords.
type UserRegisterer interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
}

// BookLister is used to check whether the catalog is empty.
type BookLister interface {
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, int, error)
}

// BookCreator adds catalog entries.
type BookCreator interface {
	Create(ctx context.Context, input models.BookInput) (*models.Book, error)
}

// Options holds the seeded credentials.
type Options struct {
	AdminUsername   string
	AdminPassword   string
	DefaultUsername string
	DefaultPassword string
	SeedBooks       bool
}

// Seeder creates missing default data. Every step is skipped when its data already exists.
type Seeder struct {
	users    UserCounter
	register UserRegisterer
	books    BookLister
	creator  BookCreator
	opts     Options
}

// NewSeeder creates a Seeder.
func NewSeeder(users UserCounter, register UserRegisterer, books BookLister, creator BookCreator, opts Options) *Seeder {
	return &Seeder{
		users:    users,
		register: register,
		books:    books,
		creator:  creator,
		opts:     opts,
	}
}

// Run seeds the admin, the default user and the sample books.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.ensureUser(ctx, models.RoleAdmin, s.opts.AdminUsername, s.opts.AdminPassword); err != nil {
		return err
	}
	if err := s.ensureUser(ctx, models.RoleUser, s.opts.DefaultUsername, s.opts.DefaultPassword); err != nil {
		return err
	}
	if !s.opts.SeedBooks {
		return nil
	}
	return s.ensureBooks(ctx)
}

func (s *Seeder) ensureUser(ctx context.Context, role, username, password string) error {
	n, err := s.users.CountByRole(ctx, role)
	if err != nil {
		return fmt.Errorf("count %s users: %w", role, err)
	}
	if n > 0 {
		return nil
	}

	if _, err := s.register.Register(ctx, username, password, role); err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			logger.Log.Warnw("seed user name taken by another role", "username", username, "role", role)
			return nil
		}
		return fmt.Errorf("seed %s user: %w", role, err)
	}

	logger.Log.Infow("seeded user", "username", username, "role", role)
	return nil
}

func (s *Seeder) ensureBooks(ctx context.Context) error {
	_, total, err := s.books.List(ctx, models.BookFilter{PageNumber: 1, PageSize: 1})
	if err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	if total > 0 {
		return nil
	}

	created := 0
	for _, in := range SampleBooks() {
		if _, err := s.creator.Create(ctx, in); err != nil {
			if errors.Is(err, services.ErrISBNExists) || errors.Is(err, services.ErrISBNDeleted) {
				continue
			}
			return fmt.Errorf("seed book %q: %w", in.Title, err)
		}
		created++
	}

	logger.Log.Infow("seeded books", "count", created)
	return nil
}

// SampleBooks returns the starter catalog.
func SampleBooks() []models.BookInput {
	return []models.BookInput{
		{Title: "Clean Code", Author: "Robert C. Martin", Genre: "Programming", PublicationYear: 2008, ISBN: "9780132350884", Price: 40.00},
		{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Genre: "Programming", PublicationYear: 1999, ISBN: "9780201616224", Price: 45.00},
		{Title: "Design Patterns", Author: "Erich Gamma", Genre: "Software Engineering", PublicationYear: 1994, ISBN: "9780201633610", Price: 50.00},
		{Title: "Refactoring", Author: "Martin Fowler", Genre: "Programming", PublicationYear: 1999, ISBN: "9780201485677", Price: 42.00},
		{Title: "Head First Design Patterns", Author: "Eric Freeman", Genre: "Software Engineering", PublicationYear: 2004, ISBN: "9780596007126", Price: 44.99},
		{Title: "C# in Depth", Author: "Jon Skeet", Genre: "C#", PublicationYear: 2019, ISBN: "9781617294536", Price: 61.00},
		{Title: "Effective C#", Author: "Bill Wagner", Genre: "C#", PublicationYear: 2017, ISBN: "9780135159941", Price: 45.00},
		{Title: "ASP.NET Core in Action", Author: "Andrew Lock", Genre: ".NET", PublicationYear: 2021, ISBN: "9781617298305", Price: 49.99},
		{Title: "Domain-Driven Design", Author: "Eric Evans", Genre: "Software Engineering", PublicationYear: 2003, ISBN: "9780321125217", Price: 55.00},
		{Title: "Working Effectively with Legacy Code", Author: "Michael Feathers", Genre: "Programming", PublicationYear: 2004, ISBN: "9780131177055", Price: 48.00},
	}
}
