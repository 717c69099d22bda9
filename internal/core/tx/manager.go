// Package tx defines transaction management abstractions so domain
// services stay decoupled from the database driver. The pgx-backed
// implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager is the contract for transactional execution.
type Manager interface {
	// RunInTransaction executes fn within a database transaction.
	// An error from fn rolls the transaction back; success commits it.
	// Nested calls reuse the transaction already on the context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager with read-only transactions for
// queries that never write.
type ReadOnlyManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction. Writes inside
	// fn fail at the database level.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
