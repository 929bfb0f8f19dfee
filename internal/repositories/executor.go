package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/logger"
)

const (
	dialectPostgres = "postgres"

	tableBooks         = "books"
	tableBorrowRecords = "borrow_records"
	tableUsers         = "users"

	constraintActiveBorrow = "ux_borrow_records_active_book"
	constraintBookISBN     = "ux_books_isbn"
	constraintUsername     = "ux_users_username_lower"

	sqlStateUniqueViolation = "23505"
)

// TxGetter returns the transaction bound to ctx, or nil when there is none.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when present and falls back to the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var ext sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			ext = tx
		}
	}
	return ext
}

func builder() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

// isUniqueViolation reports whether err is a unique violation of the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateUniqueViolation && pgErr.ConstraintName == constraint
}

// containsPattern builds an ILIKE pattern matching s anywhere, escaping wildcards.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
