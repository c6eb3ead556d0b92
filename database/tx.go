package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// WithTx runs fn inside a single database transaction.
//
// The transaction commits when fn returns nil and rolls back when fn
// returns an error or panics, so a mutating sequence (authorization
// check, dependency check, inserts/deletes) either applies fully or
// not at all.
func (db *Database) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, db.Pool, fn)
}
