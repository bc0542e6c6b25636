package pg

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const maxSerializationRetries = 3

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
	BeginWithOptions(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) error
}

type TxManager struct {
	pool Pool
}

func NewTXManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn as a single unit of work with the default isolation level.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	return m.BeginWithOptions(ctx, pgx.TxOptions{}, fn)
}

// BeginWithOptions runs fn inside a transaction with the given options.
// A call made while a unit is already active joins that unit.
// Serialization failures are retried before being reported.
func (m *TxManager) BeginWithOptions(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= maxSerializationRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !isSerializationFailure(err) {
			return err
		}
		zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) (err error) {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return StoreError("begin tx", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return StoreError("commit tx", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
