package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skinbet/internal/pg"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := New(pg.New(mockDB))

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.MatchRepo)
	assert.NotNil(t, repo.BetRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.EventRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
