package pg

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/migrations"
)

// RunMigrations applies the embedded ledger schema through a database/sql
// handle borrowed from pool.
func RunMigrations(pool *pgxpool.Pool) (err error) {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err = goose.SetDialect("postgres"); err != nil {
		return StoreError("set goose dialect", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if cErr := db.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close migration db: %w", cErr)
		}
	}()

	if err = goose.Up(db, "."); err != nil {
		return StoreError("apply migrations", err)
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return StoreError("read schema version", err)
	}
	zap.L().Info("ledger schema is up to date", zap.Int64("version", version))
	return nil
}
