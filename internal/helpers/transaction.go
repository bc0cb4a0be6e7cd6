package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// TxBeginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction runs fn inside a transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func WithTransaction(ctx context.Context, pool TxBeginner, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// Rollback after a successful commit returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTransactionRetry retries WithTransaction on serialization failures
// (SQLSTATE 40001) up to maxRetries additional times.
func WithTransactionRetry(ctx context.Context, pool TxBeginner, maxRetries int, fn TransactionFunc) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "40001" || attempt == maxRetries {
			break
		}
		logger.Log.Warn("Transaction failed due to serialization error, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
	}
	return err
}

// PoolTxRunner runs query callbacks inside pool transactions.
type PoolTxRunner struct {
	pool       TxBeginner
	maxRetries int
}

// NewPoolTxRunner creates a runner that retries serialization failures.
func NewPoolTxRunner(pool TxBeginner, maxRetries int) *PoolTxRunner {
	return &PoolTxRunner{pool: pool, maxRetries: maxRetries}
}

// RunInTx hands fn a Querier bound to a fresh transaction.
func (r *PoolTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.pool, r.maxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}
