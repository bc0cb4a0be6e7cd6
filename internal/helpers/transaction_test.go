package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
}

func (f *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		pool := &fakeBeginner{}
		err := WithTransaction(ctx, pool, func(tx pgx.Tx) error { return nil })
		require.NoError(t, err)
		require.Len(t, pool.txs, 1)
		assert.True(t, pool.txs[0].committed)
		assert.False(t, pool.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		pool := &fakeBeginner{}
		boom := errors.New("boom")
		err := WithTransaction(ctx, pool, func(tx pgx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, pool.txs[0].committed)
		assert.True(t, pool.txs[0].rolledBack)
	})

	t.Run("begin failure", func(t *testing.T) {
		pool := &fakeBeginner{beginErr: errors.New("no connection")}
		err := WithTransaction(ctx, pool, func(tx pgx.Tx) error { return nil })
		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}

func TestWithTransactionRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		pool := &fakeBeginner{}
		attempts := 0
		err := WithTransactionRetry(ctx, pool, 3, func(tx pgx.Tx) error {
			attempts++
			if attempts < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.True(t, pool.txs[2].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		pool := &fakeBeginner{}
		attempts := 0
		err := WithTransactionRetry(ctx, pool, 1, func(tx pgx.Tx) error {
			attempts++
			return &pgconn.PgError{Code: "40001"}
		})
		assert.Error(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		pool := &fakeBeginner{}
		attempts := 0
		err := WithTransactionRetry(ctx, pool, 3, func(tx pgx.Tx) error {
			attempts++
			return &pgconn.PgError{Code: "23505"}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestPoolTxRunner(t *testing.T) {
	pool := &fakeBeginner{}
	runner := NewPoolTxRunner(pool, 0)

	var got db.Querier
	err := runner.RunInTx(context.Background(), func(q db.Querier) error {
		got = q
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.True(t, pool.txs[0].committed)
}
