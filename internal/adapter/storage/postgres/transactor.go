package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out database transactions for writes that must land
// atomically, such as a transaction status change committed together with
// the webhook event bookkeeping that acknowledges it.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor on the shared connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction. The caller owns commit and rollback.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
