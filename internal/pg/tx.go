package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type TxManager struct {
	pool Beginner
}

func NewTXManager(pool Beginner) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn inside a transaction. Nested calls join the outer one.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("rollback failed", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("can't commit transaction: %w", err)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}
