package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicebox-app/booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	txs   []*fakeTx
	begun int
}

func (f *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	if f.begun < len(f.txs) && f.txs[f.begun] != nil {
		tx = f.txs[f.begun]
	}
	f.begun++
	return tx, nil
}

// Ошибка сериализации в том виде, в каком её возвращают репозитории:
// *pq.Error завернута в сентинел через цепочку %w
func wrappedSerializationError() error {
	repoSentinel := errors.New("booking.repository: failed to execute query")
	pqErr := &pq.Error{Code: "40001", Message: "could not serialize access"}
	return fmt.Errorf("%w: Create - execute insert: %w", repoSentinel, pqErr)
}

func TestDoSerializable_RetriesWrappedRepositoryConflict(t *testing.T) {
	beginner := &fakeTxBeginner{}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return wrappedSerializationError()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, beginner.begun)
}

func TestDoSerializable_RetriesCommitConflict(t *testing.T) {
	beginner := &fakeTxBeginner{
		txs: []*fakeTx{
			{commitErr: &pq.Error{Code: "40001"}},
			{},
		},
	}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, beginner.txs[1].committed)
}

func TestDoSerializable_PersistentConflictSurfacesSentinel(t *testing.T) {
	manager := NewTransactionManager(&fakeTxBeginner{})

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrappedSerializationError()
	})

	assert.ErrorIs(t, err, ErrSerializationConflict)
	// Один повтор: две попытки всего
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_NonRetryableErrorNotRetried(t *testing.T) {
	manager := NewTransactionManager(&fakeTxBeginner{})

	boom := errors.New("constraint violation")
	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_ExecutorInContext(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeTxBeginner{txs: []*fakeTx{tx}}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))
		assert.Same(t, tx, dbmetrics.GetExecutor(ctx, nil))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
}
