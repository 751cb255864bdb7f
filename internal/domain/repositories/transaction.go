package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager scopes a group of repository operations to a single
// database transaction: everything inside fn commits or nothing does.
type TransactionManager interface {
	// ExecTx executes fn within a transaction
	ExecTx(ctx context.Context, fn TxFn) error
}
