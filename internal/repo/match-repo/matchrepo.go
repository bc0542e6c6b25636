package matchrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

const (
	lockQuery = `
		SELECT id, type, state, team1, team2, start_at
		FROM matches
		WHERE id = $1
		FOR SHARE`
	poolSelect = `
		SELECT m.id, m.type, m.state, m.team1, m.team2, m.start_at,
			t1.name, t1.logo, t2.name, t2.logo,
			COALESCE(SUM(b.value) FILTER (WHERE b.team = 1), 0),
			COALESCE(SUM(b.value) FILTER (WHERE b.team = 2), 0)
		FROM matches m
		JOIN teams t1 ON t1.id = m.team1
		JOIN teams t2 ON t2.id = m.team2
		LEFT JOIN bets b ON b.match_id = m.id`
	poolGroup = `
		GROUP BY m.id, t1.id, t2.id`
	listQuery = poolSelect + `
		WHERE ($1::text = '' OR m.type = $1::text)` + poolGroup
	findPoolQuery = poolSelect + `
		WHERE m.id = $1` + poolGroup
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockByID reads the match and blocks state changes until the surrounding unit ends.
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Match, error) {
	var (
		match domain.Match
		state string
	)
	err := r.db.QueryRow(ctx, lockQuery, id).
		Scan(&match.ID, &match.Type, &state, &match.Team1, &match.Team2, &match.StartAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock match", zap.Int64("matchID", id), zap.Error(err))
		return nil, pg.StoreError("lock match", err)
	}
	match.State = domain.MatchState(state)
	return &match, nil
}

// List returns every match of the given type with its pooled bet totals.
// An empty type lists all matches.
func (r *Repository) List(ctx context.Context, matchType string) ([]domain.MatchPool, error) {
	rows, err := r.db.Query(ctx, listQuery, matchType)
	if err != nil {
		zap.L().Error("can't list matches", zap.Error(err))
		return nil, pg.StoreError("list matches", err)
	}
	defer rows.Close()

	var pools []domain.MatchPool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			zap.L().Error("can't scan match", zap.Error(err))
			return nil, pg.StoreError("scan match", err)
		}
		pools = append(pools, *pool)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("list matches", err)
	}
	return pools, nil
}

func (r *Repository) FindPool(ctx context.Context, id int64) (*domain.MatchPool, error) {
	pool, err := scanPool(r.db.QueryRow(ctx, findPoolQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find match", zap.Int64("matchID", id), zap.Error(err))
		return nil, pg.StoreError("find match", err)
	}
	return pool, nil
}

func scanPool(row pgx.Row) (*domain.MatchPool, error) {
	var (
		pool  domain.MatchPool
		state string
	)
	err := row.Scan(
		&pool.ID, &pool.Type, &state, &pool.Team1, &pool.Team2, &pool.StartAt,
		&pool.Team1Name, &pool.Team1Logo, &pool.Team2Name, &pool.Team2Logo,
		&pool.Team1Value, &pool.Team2Value,
	)
	if err != nil {
		return nil, err
	}
	pool.State = domain.MatchState(state)
	return &pool, nil
}
