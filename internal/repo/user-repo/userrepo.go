package userrepo

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
		SELECT steam_id, credit, trade_link, created_at
		FROM users
		WHERE steam_id = $1`
	lockQuery = findQuery + `
		FOR UPDATE`
	createQuery = `
		INSERT INTO users (steam_id)
		VALUES ($1)
		ON CONFLICT (steam_id) DO UPDATE SET steam_id = EXCLUDED.steam_id
		RETURNING steam_id, credit, trade_link, created_at`
	addCreditQuery = `
		UPDATE users
		SET credit = credit + $1
		WHERE steam_id = $2`
	subtractCreditQuery = `
		UPDATE users
		SET credit = credit - $1
		WHERE steam_id = $2 AND credit >= $1`
	setTradeLinkQuery = `
		UPDATE users
		SET trade_link = $1
		WHERE steam_id = $2`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindBySteamID(ctx context.Context, steamID string) (*domain.User, error) {
	return r.scanUser(ctx, "find user", findQuery, steamID)
}

// LockBySteamID reads the user row holding a write lock until the surrounding unit ends.
func (r *Repository) LockBySteamID(ctx context.Context, steamID string) (*domain.User, error) {
	return r.scanUser(ctx, "lock user", lockQuery, steamID)
}

func (r *Repository) Create(ctx context.Context, steamID string) (*domain.User, error) {
	user, err := r.scanUser(ctx, "create user", createQuery, steamID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pg.StoreError("create user", pgx.ErrNoRows)
	}
	return user, nil
}

// AddCredit reports false when no such user exists.
func (r *Repository) AddCredit(ctx context.Context, steamID string, amount decimal.Decimal) (bool, error) {
	return r.update(ctx, "add credit", addCreditQuery, amount, steamID)
}

// SubtractCredit reports false when the user is missing or holds less than amount.
// Concurrent debits cannot take the balance below zero.
func (r *Repository) SubtractCredit(ctx context.Context, steamID string, amount decimal.Decimal) (bool, error) {
	return r.update(ctx, "subtract credit", subtractCreditQuery, amount, steamID)
}

func (r *Repository) SetTradeLink(ctx context.Context, steamID, link string) (bool, error) {
	return r.update(ctx, "set trade link", setTradeLinkQuery, link, steamID)
}

func (r *Repository) scanUser(ctx context.Context, op, query string, args ...any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, args...).Scan(&user.SteamID, &user.Credit, &user.TradeLink, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, pg.StoreError(op, err)
	}
	return &user, nil
}

func (r *Repository) update(ctx context.Context, op, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't "+op, zap.Error(err))
		return false, pg.StoreError(op, err)
	}
	return tag.RowsAffected() == 1, nil
}
