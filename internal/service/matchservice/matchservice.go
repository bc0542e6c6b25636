package matchservice

//go:generate mockgen -source=matchservice.go -destination=mock_matchservice.go -package=matchservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/service/wagerservice"
)

type MatchRepo interface {
	List(ctx context.Context, matchType string) ([]domain.MatchPool, error)
	FindPool(ctx context.Context, id int64) (*domain.MatchPool, error)
}

type Service struct {
	matchRepo MatchRepo
}

func New(matchRepo MatchRepo) *Service {
	return &Service{
		matchRepo: matchRepo,
	}
}

var stateRank = map[domain.MatchState]int{
	domain.MatchLive:     0,
	domain.MatchOpen:     1,
	domain.MatchFinished: 2,
}

var hundred = decimal.NewFromInt(100)

// ListMatches returns live matches first (latest start first), then open and
// finished ones by start time.
func (s *Service) ListMatches(ctx context.Context, matchType string) ([]domain.MatchPool, error) {
	pools, err := s.matchRepo.List(ctx, matchType)
	if err != nil {
		return nil, err
	}
	for i := range pools {
		withStats(&pools[i])
	}

	sort.SliceStable(pools, func(i, j int) bool {
		a, b := pools[i], pools[j]
		if stateRank[a.State] != stateRank[b.State] {
			return stateRank[a.State] < stateRank[b.State]
		}
		if a.State == domain.MatchLive {
			return a.StartAt.After(b.StartAt)
		}
		return a.StartAt.Before(b.StartAt)
	})
	return pools, nil
}

func (s *Service) GetMatch(ctx context.Context, id int64) (*domain.MatchPool, error) {
	pool, err := s.matchRepo.FindPool(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: %d", wagerservice.ErrMatchNotFound, id)
	}
	withStats(pool)
	return pool, nil
}

func withStats(pool *domain.MatchPool) {
	pool.Team1Percent, pool.Team2Percent = 0, 0
	pool.Team1Ratio, pool.Team2Ratio = decimal.Zero, decimal.Zero

	total := pool.Team1Value.Add(pool.Team2Value)
	if !total.IsPositive() {
		return
	}
	if pool.Team2Value.IsPositive() {
		pool.Team1Ratio = pool.Team1Value.Div(pool.Team2Value).Round(2)
	}
	if pool.Team1Value.IsPositive() {
		pool.Team2Ratio = pool.Team2Value.Div(pool.Team1Value).Round(2)
	}
	pool.Team1Percent = pool.Team1Value.Div(total).Mul(hundred).Round(0).IntPart()
	pool.Team2Percent = 100 - pool.Team1Percent
}
