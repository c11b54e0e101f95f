package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalfund/internal/db"
)

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx, so the same repository
// code runs standalone or as part of a larger transaction.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func forUpdate(q Querier) string {
	if q.DriverName() == db.DriverPostgres {
		return " FOR UPDATE"
	}
	// SQLite locks the whole database for writers; see the _txlock pragma.
	return ""
}
