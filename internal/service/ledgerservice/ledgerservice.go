package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
)

type UserRepo interface {
	FindBySteamID(ctx context.Context, steamID string) (*domain.User, error)
	AddCredit(ctx context.Context, steamID string, amount decimal.Decimal) (bool, error)
	SubtractCredit(ctx context.Context, steamID string, amount decimal.Decimal) (bool, error)
}

type EventRepo interface {
	MarkApplied(ctx context.Context, deposit domain.Deposit) (bool, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) error
}

var (
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrUserNotFound       = errors.New("user not found")
)

// Service owns every change to a user's credit.
// It has no cache side effects: callers invalidate the float cache themselves.
type Service struct {
	userRepo       UserRepo
	eventRepo      EventRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
}

func New(userRepo UserRepo, eventRepo EventRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
	}
}

// Normalize rounds amount to cents and rejects anything not strictly positive.
func Normalize(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return amount, nil
}

func (s *Service) CreditUser(ctx context.Context, steamID string, amount decimal.Decimal) error {
	amount, err := Normalize(amount)
	if err != nil {
		return err
	}

	ok, err := s.userRepo.AddCredit(ctx, steamID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, steamID)
	}
	return nil
}

// DebitUser fails with ErrInsufficientCredit instead of taking the balance below zero.
// Called inside a unit, it joins that unit.
func (s *Service) DebitUser(ctx context.Context, steamID string, amount decimal.Decimal) error {
	amount, err := Normalize(amount)
	if err != nil {
		return err
	}

	ok, err := s.userRepo.SubtractCredit(ctx, steamID, amount)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	user, err := s.userRepo.FindBySteamID(ctx, steamID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, steamID)
	}
	return fmt.Errorf("%w: have %s, need %s", ErrInsufficientCredit, user.Credit, amount)
}

// ApplyDeposit credits a completed deposit exactly once. It reports false when
// the event or its trade was credited before.
func (s *Service) ApplyDeposit(ctx context.Context, deposit domain.Deposit) (bool, error) {
	amount, err := Normalize(deposit.Amount)
	if err != nil {
		return false, err
	}
	deposit.Amount = amount

	var applied bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		marked, err := s.eventRepo.MarkApplied(ctx, deposit)
		if err != nil {
			return err
		}
		if !marked {
			return nil
		}
		if err := s.CreditUser(ctx, deposit.SteamID, amount); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		zap.L().Info("deposit credited",
			zap.Int64("eventID", deposit.EventID),
			zap.Int64("tradeID", deposit.TradeID),
			zap.String("steamID", deposit.SteamID),
			zap.String("amount", amount.String()),
		)
	}
	return applied, nil
}

// RecordWithdrawal debits the total and stores the withdrawal as one unit.
func (s *Service) RecordWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) error {
	total, err := Normalize(withdrawal.Total)
	if err != nil {
		return err
	}
	withdrawal.Total = total

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.DebitUser(ctx, withdrawal.SteamID, total); err != nil {
			return err
		}
		return s.withdrawalRepo.Create(ctx, withdrawal)
	})
}
