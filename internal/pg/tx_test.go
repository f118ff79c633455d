package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE customers").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context) error {
				tx, ok := ctx.Value(txKey{}).(pgx.Tx)
				if !ok {
					return errors.New("no tx in context")
				}
				_, err := tx.Exec(ctx, "UPDATE customers SET point = point + 1")
				return err
			},
		},
		{
			name: "Rolls back on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context) error {
				return errors.New("fn failed")
			},
			expectErr: true,
		},
		{
			name: "Begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(ctx context.Context) error {
				return nil
			},
			expectErr: true,
		},
		{
			name: "Commit failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(ctx context.Context) error {
				return nil
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			err = NewTXManager(mock).Begin(context.Background(), tt.fn)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_NestedJoinsOuter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTXManager(mock)
	calls := 0
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		return m.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_UsesPoolOutsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM receipts").WillReturnResult(pgxmock.NewResult("DELETE", 3))

	tag, err := New(mock).Exec(context.Background(), "DELETE FROM receipts")

	require.NoError(t, err)
	assert.Equal(t, int64(3), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}
