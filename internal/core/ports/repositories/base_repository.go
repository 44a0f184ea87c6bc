package repositories

import "context"

// TransactionManager scopes a unit of work to a single database transaction.
// Repositories called with the context passed to fn participate in it.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
