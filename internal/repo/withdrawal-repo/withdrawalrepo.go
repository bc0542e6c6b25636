package withdrawalrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

const (
	createQuery = `
		INSERT INTO withdrawals (id, steam_id, item_ids, total)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	listQuery = `
		SELECT id, steam_id, item_ids, total, created_at
		FROM withdrawals
		WHERE steam_id = $1
		ORDER BY created_at DESC`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	err := r.db.QueryRow(ctx, createQuery,
		withdrawal.ID, withdrawal.SteamID, withdrawal.ItemIDs, withdrawal.Total,
	).Scan(&withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return pg.StoreError("create withdrawal", err)
	}
	return nil
}

func (r *Repository) ListBySteamID(ctx context.Context, steamID string) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, listQuery, steamID)
	if err != nil {
		zap.L().Error("can't list withdrawals", zap.Error(err))
		return nil, pg.StoreError("list withdrawals", err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.SteamID, &w.ItemIDs, &w.Total, &w.CreatedAt); err != nil {
			zap.L().Error("can't scan withdrawal", zap.Error(err))
			return nil, pg.StoreError("scan withdrawal", err)
		}
		withdrawals = append(withdrawals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("list withdrawals", err)
	}
	return withdrawals, nil
}
