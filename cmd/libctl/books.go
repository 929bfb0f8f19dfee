package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
)

//go:generate mockgen -source=books.go -destination=books_mock.go -package=main

// BookCreator adds a book to the catalog.
type BookCreator interface {
	Create(ctx context.Context, input models.BookInput) (*models.Book, error)
}

var validate = validator.New()

// importResult summarizes an import run.
type importResult struct {
	Imported int
	Skipped  int
}

func newImportBooksCmd(connect func(context.Context) (*backend, error)) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-books",
		Short: "Import books from a CSV file",
		Long: "Import books from a CSV file with the header\n" +
			"title,author,genre,publication_year,isbn,price.\n" +
			"Rows whose ISBN is already taken are skipped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			inputs, err := parseBooksCSV(f)
			if err != nil {
				return err
			}

			b, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			res, err := importBooks(cmd.Context(), b.books, inputs, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported: %d, skipped: %d\n", res.Imported, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

var csvColumns = []string{"title", "author", "genre", "publication_year", "isbn", "price"}

// parseBooksCSV reads book rows. Columns are matched by header name, so
// their order is free; publication_year and price may be left empty.
func parseBooksCSV(r io.Reader) ([]models.BookInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty CSV file")
		}
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var inputs []models.BookInput
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(col string) string {
			return strings.TrimSpace(row[idx[col]])
		}

		input := models.BookInput{
			Title:  field("title"),
			Author: field("author"),
			Genre:  field("genre"),
			ISBN:   field("isbn"),
		}
		if v := field("publication_year"); v != "" {
			if input.PublicationYear, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("line %d: invalid publication_year %q", line, v)
			}
		}
		if v := field("price"); v != "" {
			if input.Price, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("line %d: invalid price %q", line, v)
			}
		}
		if err := validate.Struct(input); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return nil, fmt.Errorf("line %d: invalid field %s", line, verrs[0].Field())
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// importBooks creates every input in order. Taken ISBNs are reported and
// skipped; any other failure stops the import.
func importBooks(ctx context.Context, books BookCreator, inputs []models.BookInput, out io.Writer) (importResult, error) {
	var res importResult
	for _, in := range inputs {
		book, err := books.Create(ctx, in)
		switch {
		case errors.Is(err, services.ErrISBNExists), errors.Is(err, services.ErrISBNDeleted):
			fmt.Fprintf(out, "skip %s (%s): %v\n", in.ISBN, in.Title, err)
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("import %q: %w", in.Title, err)
		default:
			fmt.Fprintf(out, "added %d %s (%s)\n", book.ID, in.ISBN, in.Title)
			res.Imported++
		}
	}
	return res, nil
}
