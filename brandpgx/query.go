package brandpgx

import (
	"context"
	"fmt"

	"github.com/authcorp/libs/go/brand"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgx.Conn, *pgxpool.Pool and pgx.Tx used here.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Collect scans a single-column result into brands of T and closes rows.
func Collect[T brand.Tag, R any](rows pgx.Rows) ([]brand.Brand[T, R], error) {
	return pgx.CollectRows(rows, pgx.RowTo[brand.Brand[T, R]])
}

// QueryAll runs sql and returns its single column as brands of T.
func QueryAll[T brand.Tag, R any](ctx context.Context, q Querier, sql string, args ...any) ([]brand.Brand[T, R], error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", brand.Name[T](), err)
	}
	ids, err := Collect[T, R](rows)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", brand.Name[T](), err)
	}
	return ids, nil
}

// QueryOne runs sql and scans the first column of its single row into a brand
// of T. pgx.ErrNoRows is returned wrapped when there is no row.
func QueryOne[T brand.Tag, R any](ctx context.Context, q Querier, sql string, args ...any) (brand.Brand[T, R], error) {
	var b brand.Brand[T, R]
	if err := q.QueryRow(ctx, sql, args...).Scan(&b); err != nil {
		return b, fmt.Errorf("query %s: %w", brand.Name[T](), err)
	}
	return b, nil
}
