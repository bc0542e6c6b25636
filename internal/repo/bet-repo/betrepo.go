package betrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

const (
	findQuery = `
		SELECT steam_id, match_id, team, value, created_at, updated_at
		FROM bets
		WHERE steam_id = $1 AND match_id = $2`
	findForUpdateQuery = findQuery + `
		FOR UPDATE`
	createQuery = `
		INSERT INTO bets (steam_id, match_id, team, value)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`
	increaseQuery = `
		UPDATE bets
		SET value = value + $1, updated_at = now()
		WHERE steam_id = $2 AND match_id = $3
		RETURNING steam_id, match_id, team, value, created_at, updated_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Find(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error) {
	return r.scanBet(ctx, "find bet", findQuery, steamID, matchID)
}

// FindForUpdate reads the bet holding a write lock until the surrounding unit ends.
func (r *Repository) FindForUpdate(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error) {
	return r.scanBet(ctx, "lock bet", findForUpdateQuery, steamID, matchID)
}

func (r *Repository) Create(ctx context.Context, bet *domain.Bet) error {
	err := r.db.QueryRow(ctx, createQuery, bet.SteamID, bet.MatchID, bet.Team, bet.Value).
		Scan(&bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save bet", zap.Error(err))
		return pg.StoreError("create bet", err)
	}
	return nil
}

func (r *Repository) Increase(ctx context.Context, steamID string, matchID int64, delta decimal.Decimal) (*domain.Bet, error) {
	bet, err := r.scanBet(ctx, "increase bet", increaseQuery, delta, steamID, matchID)
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, pg.StoreError("increase bet", pgx.ErrNoRows)
	}
	return bet, nil
}

func (r *Repository) scanBet(ctx context.Context, op, query string, args ...any) (*domain.Bet, error) {
	var bet domain.Bet
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&bet.SteamID, &bet.MatchID, &bet.Team, &bet.Value, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, pg.StoreError(op, err)
	}
	return &bet, nil
}
