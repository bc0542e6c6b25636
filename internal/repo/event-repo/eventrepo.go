package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

const markAppliedQuery = `
	INSERT INTO applied_trade_events (event_id, trade_id, steam_id, amount)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT DO NOTHING`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// MarkApplied records the deposit as credited. It reports false when the event
// or its trade was already recorded, in which case nothing must be credited.
func (r *Repository) MarkApplied(ctx context.Context, deposit domain.Deposit) (bool, error) {
	tag, err := r.db.Exec(ctx, markAppliedQuery, deposit.EventID, deposit.TradeID, deposit.SteamID, deposit.Amount)
	if err != nil {
		zap.L().Error("can't mark trade event applied", zap.Int64("eventID", deposit.EventID), zap.Error(err))
		return false, pg.StoreError("mark event applied", err)
	}
	return tag.RowsAffected() == 1, nil
}
