package wagerservice

//go:generate mockgen -source=wagerservice.go -destination=mock_wagerservice.go -package=wagerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/metrics"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
)

type MatchRepo interface {
	LockByID(ctx context.Context, id int64) (*domain.Match, error)
}

type UserRepo interface {
	LockBySteamID(ctx context.Context, steamID string) (*domain.User, error)
}

type BetRepo interface {
	Find(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error)
	FindForUpdate(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error)
	Create(ctx context.Context, bet *domain.Bet) error
	Increase(ctx context.Context, steamID string, matchID int64, delta decimal.Decimal) (*domain.Bet, error)
}

type Ledger interface {
	DebitUser(ctx context.Context, steamID string, amount decimal.Decimal) error
}

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchNotOpen     = errors.New("match is not open for bets")
	ErrBetNotIncreasing = errors.New("bet must be greater than the current one")
	ErrTeamMismatch     = errors.New("bet already placed on the other team")
	ErrInvalidTeam      = errors.New("team must be 1 or 2")
)

type Service struct {
	matchRepo MatchRepo
	userRepo  UserRepo
	betRepo   BetRepo
	ledger    Ledger
	publisher notify.Publisher
	txManager pg.TXManager
}

func New(matchRepo MatchRepo, userRepo UserRepo, betRepo BetRepo, ledger Ledger, publisher notify.Publisher, txManager pg.TXManager) *Service {
	return &Service{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		betRepo:   betRepo,
		ledger:    ledger,
		publisher: publisher,
		txManager: txManager,
	}
}

// PlaceOrIncreaseBet sets the user's bet on a match to amount, debiting only the
// difference to any existing bet. The match, user and bet rows stay locked for
// the whole unit so concurrent calls for the same pair serialize.
func (s *Service) PlaceOrIncreaseBet(ctx context.Context, steamID string, matchID int64, team int, amount decimal.Decimal) (*domain.Bet, error) {
	amount = amount.Round(2)

	var (
		result  *domain.Bet
		debited decimal.Decimal
	)
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	err := s.txManager.BeginWithOptions(ctx, opts, func(ctx context.Context) error {
		match, err := s.matchRepo.LockByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return fmt.Errorf("%w: %d", ErrMatchNotFound, matchID)
		}
		if match.State != domain.MatchOpen {
			return fmt.Errorf("%w: match %d is %s", ErrMatchNotOpen, matchID, match.State)
		}
		if team != domain.Team1 && team != domain.Team2 {
			return fmt.Errorf("%w: got %d", ErrInvalidTeam, team)
		}

		user, err := s.userRepo.LockBySteamID(ctx, steamID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: %s", ledgerservice.ErrUserNotFound, steamID)
		}

		bet, err := s.betRepo.FindForUpdate(ctx, steamID, matchID)
		if err != nil {
			return err
		}
		if bet == nil {
			result, err = s.place(ctx, user, matchID, team, amount)
			debited = amount
			return err
		}

		if bet.Team != team {
			return fmt.Errorf("%w: existing bet is on team %d", ErrTeamMismatch, bet.Team)
		}
		delta := amount.Sub(bet.Value)
		if !delta.IsPositive() {
			return fmt.Errorf("%w: current %s, requested %s", ErrBetNotIncreasing, bet.Value, amount)
		}
		if delta.GreaterThan(user.Credit) {
			return fmt.Errorf("%w: have %s, need %s", ledgerservice.ErrInsufficientCredit, user.Credit, delta)
		}
		if err := s.ledger.DebitUser(ctx, steamID, delta); err != nil {
			return err
		}
		result, err = s.betRepo.Increase(ctx, steamID, matchID, delta)
		debited = delta
		return err
	})
	if err != nil {
		metrics.Bets.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}

	metrics.Bets.WithLabelValues("accepted").Inc()
	zap.L().Info("bet accepted",
		zap.String("steamID", steamID),
		zap.Int64("matchID", matchID),
		zap.Int("team", team),
		zap.String("value", result.Value.String()),
		zap.String("debited", debited.String()),
	)
	notify.Best(ctx, s.publisher, notify.Event{
		Type:      notify.TypeBetPlaced,
		SteamID:   steamID,
		Amount:    debited,
		Reference: fmt.Sprintf("match:%d", matchID),
	})
	return result, nil
}

func (s *Service) place(ctx context.Context, user *domain.User, matchID int64, team int, amount decimal.Decimal) (*domain.Bet, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ledgerservice.ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(user.Credit) {
		return nil, fmt.Errorf("%w: have %s, need %s", ledgerservice.ErrInsufficientCredit, user.Credit, amount)
	}
	if err := s.ledger.DebitUser(ctx, user.SteamID, amount); err != nil {
		return nil, err
	}

	bet := &domain.Bet{
		SteamID: user.SteamID,
		MatchID: matchID,
		Team:    team,
		Value:   amount,
	}
	if err := s.betRepo.Create(ctx, bet); err != nil {
		return nil, err
	}
	return bet, nil
}

// GetBet returns the user's bet on the match, or nil when there is none.
func (s *Service) GetBet(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error) {
	return s.betRepo.Find(ctx, steamID, matchID)
}

func outcome(err error) string {
	if errors.Is(err, pg.ErrStore) {
		return "failed"
	}
	return "rejected"
}
