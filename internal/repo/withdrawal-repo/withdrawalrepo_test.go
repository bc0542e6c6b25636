package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/pg/pgtest"
)

const steamID = "76561198000000001"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	createdAt := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves withdrawal",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(id, steamID, []string{"i1", "i2"}, pgtest.Decimal("7.50")).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(id, steamID, []string{"i1", "i2"}, pgtest.Decimal("7.50")).
					WillReturnError(errors.New("duplicate key"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := &domain.Withdrawal{
				ID:      id,
				SteamID: steamID,
				ItemIDs: []string{"i1", "i2"},
				Total:   decimal.RequireFromString("7.50"),
			}
			err := repo.Create(context.Background(), w)
			if tt.expectErr {
				assert.ErrorIs(t, err, pg.ErrStore)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, createdAt, w.CreatedAt)
		})
	}
}

func TestRepository_ListBySteamID(t *testing.T) {
	repo, mock := NewMock(t)
	id1, id2 := uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Returns history",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs(steamID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "steam_id", "item_ids", "total", "created_at"}).
						AddRow(id1, steamID, []string{"a"}, decimal.NewFromInt(5), now).
						AddRow(id2, steamID, []string{"b", "c"}, decimal.NewFromInt(9), now.Add(-time.Hour)))
			},
			wantLen: 2,
		},
		{
			name: "Empty history",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs(steamID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "steam_id", "item_ids", "total", "created_at"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs(steamID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListBySteamID(context.Background(), steamID)
			if tt.expectErr {
				assert.ErrorIs(t, err, pg.ErrStore)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tt.wantLen)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
