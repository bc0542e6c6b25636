package matchrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

var poolColumns = []string{
	"id", "type", "state", "team1", "team2", "start_at",
	"team1_name", "team1_logo", "team2_name", "team2_logo",
	"team1_value", "team2_value",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	startAt := time.Date(2024, 12, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Match
	}{
		{
			name: "Open match",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "type", "state", "team1", "team2", "start_at"}).
						AddRow(int64(7), "tournament", "open", int64(1), int64(2), startAt))
			},
			result: &domain.Match{ID: 7, Type: "tournament", State: domain.MatchOpen, Team1: 1, Team2: 2, StartAt: startAt},
		},
		{
			name: "Missing match",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			match, err := repo.LockByID(context.Background(), 7)
			if tt.expectErr {
				assert.ErrorIs(t, err, pg.ErrStore)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, match)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("tournament").
		WillReturnRows(pgxmock.NewRows(poolColumns).
			AddRow(int64(1), "tournament", "live", int64(1), int64(2), now,
				"Navi", "navi.png", "Liquid", "liquid.png",
				decimal.NewFromInt(30), decimal.NewFromInt(10)).
			AddRow(int64(2), "tournament", "open", int64(3), int64(4), now,
				"Vitality", "v.png", "G2", "g2.png",
				decimal.Zero, decimal.Zero))

	pools, err := repo.List(context.Background(), "tournament")
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, domain.MatchLive, pools[0].State)
	assert.Equal(t, "Liquid", pools[0].Team2Name)
	assert.True(t, pools[0].Team1Value.Equal(decimal.NewFromInt(30)))
	assert.True(t, pools[1].Team2Value.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListError(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("").
		WillReturnError(errors.New("database error"))

	pools, err := repo.List(context.Background(), "")
	assert.ErrorIs(t, err, pg.ErrStore)
	assert.Nil(t, pools)
}

func TestRepository_FindPool(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(findPoolQuery)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(poolColumns).
			AddRow(int64(3), "showmatch", "finished", int64(1), int64(2), time.Now(),
				"A", "", "B", "", decimal.NewFromInt(1), decimal.NewFromInt(2)))
	mock.ExpectQuery(regexp.QuoteMeta(findPoolQuery)).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	pool, err := repo.FindPool(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchFinished, pool.State)

	pool, err = repo.FindPool(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, pool)
}
