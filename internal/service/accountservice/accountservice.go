package accountservice

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/internal/service/tradeservice"
	"github.com/GlebRadaev/skinbet/pkg/trading"
	"github.com/GlebRadaev/skinbet/pkg/validate"
)

type UserRepo interface {
	FindBySteamID(ctx context.Context, steamID string) (*domain.User, error)
	Create(ctx context.Context, steamID string) (*domain.User, error)
	SetTradeLink(ctx context.Context, steamID, link string) (bool, error)
}

type FloatCache interface {
	Get(ctx context.Context) ([]trading.Item, error)
}

var (
	ErrInvalidTradeLink = errors.New("invalid trade link")
	ErrInvalidSteamID   = errors.New("invalid steam id")
)

// Account is a user together with the items currently available for withdrawal.
type Account struct {
	User  *domain.User
	Float []trading.Item
}

type Service struct {
	userRepo UserRepo
	cache    FloatCache
}

func New(userRepo UserRepo, cache FloatCache) *Service {
	return &Service{
		userRepo: userRepo,
		cache:    cache,
	}
}

// EnsureUser returns the user, creating it with zero credit on first sight.
func (s *Service) EnsureUser(ctx context.Context, steamID string) (*domain.User, error) {
	if !validate.IsSteamID(steamID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSteamID, steamID)
	}

	user, err := s.userRepo.FindBySteamID(ctx, steamID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Create(ctx, steamID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("user created", zap.String("steamID", steamID))
	return user, nil
}

// GetAccount loads the user and the float concurrently. An unavailable float
// is reported as empty rather than failing the whole account.
func (s *Service) GetAccount(ctx context.Context, steamID string) (*Account, error) {
	account := &Account{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.userRepo.FindBySteamID(gctx, steamID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: %s", ledgerservice.ErrUserNotFound, steamID)
		}
		account.User = user
		return nil
	})
	g.Go(func() error {
		items, err := s.cache.Get(gctx)
		if err != nil {
			zap.L().Warn("float unavailable", zap.Error(err))
			return nil
		}
		tradeservice.SortByPrice(items)
		account.Float = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if account.Float == nil {
		account.Float = []trading.Item{}
	}
	return account, nil
}

func (s *Service) SetTradeLink(ctx context.Context, steamID, link string) error {
	if !validate.IsTradeLinkOf(link, steamID) {
		return ErrInvalidTradeLink
	}

	ok, err := s.userRepo.SetTradeLink(ctx, steamID, link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ledgerservice.ErrUserNotFound, steamID)
	}
	return nil
}
