package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// querier is the subset of pgx shared by pools and transactions
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// strToText converts a string to pgtype.Text, mapping "" to NULL
func strToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// balanceOf sums the ledger for playerID
func balanceOf(ctx context.Context, q querier, playerID string) (int64, error) {
	var balance int64
	if err := q.QueryRow(ctx, sqlGetBalance, playerID).Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}
