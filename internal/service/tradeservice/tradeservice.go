package tradeservice

//go:generate mockgen -source=tradeservice.go -destination=mock_tradeservice.go -package=tradeservice

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/pkg/logger"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

const (
	recentTradesLimit = 30
	maxDepositPrice   = 400
)

type Trading interface {
	LoadInventory(ctx context.Context, steamID string) ([]trading.Item, error)
	CreateDeposit(ctx context.Context, tradeLink string, assetIDs []string) (trading.Trade, error)
	CreateWithdrawal(ctx context.Context, tradeLink string, itemIDs []string) (trading.Trade, error)
	ListTrades(ctx context.Context, filter trading.TradeFilter) ([]trading.Trade, error)
}

type FloatCache interface {
	Get(ctx context.Context) ([]trading.Item, error)
	Refresh(ctx context.Context) ([]trading.Item, error)
	Invalidate(ctx context.Context) error
}

type UserRepo interface {
	FindBySteamID(ctx context.Context, steamID string) (*domain.User, error)
}

type WithdrawalRepo interface {
	ListBySteamID(ctx context.Context, steamID string) ([]domain.Withdrawal, error)
}

type Ledger interface {
	RecordWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) error
}

var (
	ErrItemsUnavailable  = errors.New("items not available")
	ErrTradeLinkRequired = errors.New("trade link is not set")
	ErrNoItemsSelected   = errors.New("no items selected")
	ErrDuplicateItems    = errors.New("item selected more than once")
)

type Service struct {
	trading        Trading
	cache          FloatCache
	userRepo       UserRepo
	withdrawalRepo WithdrawalRepo
	ledger         Ledger
	publisher      notify.Publisher
}

func New(
	trading Trading,
	cache FloatCache,
	userRepo UserRepo,
	withdrawalRepo WithdrawalRepo,
	ledger Ledger,
	publisher notify.Publisher,
) *Service {
	return &Service{
		trading:        trading,
		cache:          cache,
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		publisher:      publisher,
	}
}

// Deposit asks the trading service for a deposit offer. Credit is applied later,
// when the completed trade arrives on the event stream.
func (s *Service) Deposit(ctx context.Context, steamID string, assetIDs []string) (trading.Trade, error) {
	user, err := s.tradingUser(ctx, steamID)
	if err != nil {
		return trading.Trade{}, err
	}
	if err := checkSelection(assetIDs); err != nil {
		return trading.Trade{}, err
	}

	trade, err := s.trading.CreateDeposit(ctx, *user.TradeLink, assetIDs)
	if err != nil {
		zap.L().Error("deposit offer failed", zap.String("steamID", steamID), zap.Error(err))
		return trading.Trade{}, external(err)
	}

	_ = s.cache.Invalidate(ctx)
	zap.L().Info("deposit offer created",
		zap.String("steamID", steamID),
		zap.Int64("tradeID", trade.ID),
		zap.Int("items", len(assetIDs)),
	)
	return trade, nil
}

// Withdraw sends float items to the user and debits their guide price total.
// Nothing is debited unless the trading service accepted the withdrawal.
func (s *Service) Withdraw(ctx context.Context, steamID string, itemIDs []string) (*domain.Withdrawal, error) {
	user, err := s.tradingUser(ctx, steamID)
	if err != nil {
		return nil, err
	}
	if err := checkSelection(itemIDs); err != nil {
		return nil, err
	}

	float, err := s.cache.Get(ctx)
	if err != nil {
		return nil, external(err)
	}
	selected, ok := pick(float, itemIDs)
	if !ok {
		float, err = s.cache.Refresh(ctx)
		if err != nil {
			return nil, external(err)
		}
		if selected, ok = pick(float, itemIDs); !ok {
			return nil, ErrItemsUnavailable
		}
	}

	total := trading.SumGuidePrice(selected).Round(2)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ledgerservice.ErrInvalidAmount, total)
	}
	if total.GreaterThan(user.Credit) {
		return nil, fmt.Errorf("%w: have %s, need %s", ledgerservice.ErrInsufficientCredit, user.Credit, total)
	}

	trade, err := s.trading.CreateWithdrawal(ctx, *user.TradeLink, itemIDs)
	if err != nil {
		zap.L().Error("withdrawal offer failed", zap.String("steamID", steamID), zap.Error(err))
		return nil, external(err)
	}
	_ = s.cache.Invalidate(ctx)

	withdrawal := &domain.Withdrawal{
		ID:      uuid.New(),
		SteamID: steamID,
		ItemIDs: itemIDs,
		Total:   total,
	}
	if err := s.ledger.RecordWithdrawal(ctx, withdrawal); err != nil {
		logger.Reconcile("withdrawal sent but not debited",
			zap.String("steamID", steamID),
			zap.Int64("tradeID", trade.ID),
			zap.Strings("itemIDs", itemIDs),
			zap.String("total", total.String()),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Info("withdrawal debited",
		zap.String("steamID", steamID),
		zap.Int64("tradeID", trade.ID),
		zap.String("total", total.String()),
	)
	notify.Best(ctx, s.publisher, notify.Event{
		Type:      notify.TypeWithdrawalDebited,
		SteamID:   steamID,
		Amount:    total,
		Reference: fmt.Sprintf("trade:%d", trade.ID),
	})
	return withdrawal, nil
}

// DepositableInventory lists the user's tradable items priced in (0, 400),
// most valuable first.
func (s *Service) DepositableInventory(ctx context.Context, steamID string) ([]trading.Item, error) {
	items, err := s.trading.LoadInventory(ctx, steamID)
	if err != nil {
		return nil, external(err)
	}

	limit := decimal.NewFromInt(maxDepositPrice)
	depositable := make([]trading.Item, 0, len(items))
	for _, item := range items {
		if item.Tradable && item.GuidePrice.IsPositive() && item.GuidePrice.LessThan(limit) {
			depositable = append(depositable, item)
		}
	}
	SortByPrice(depositable)
	return depositable, nil
}

// Trades merges the recent trades with every cancelled withdrawal.
// Cancelled withdrawals come first, the rest newest first.
func (s *Service) Trades(ctx context.Context, steamID string) ([]trading.Trade, error) {
	var recent, cancelled []trading.Trade

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recent, err = s.trading.ListTrades(gctx, trading.TradeFilter{
			UserSteamID: steamID,
			Limit:       recentTradesLimit,
			Sort:        "desc",
		})
		return err
	})
	g.Go(func() error {
		var err error
		cancelled, err = s.trading.ListTrades(gctx, trading.TradeFilter{
			UserSteamID: steamID,
			Type:        trading.TradeTypeWithdrawal,
			State:       trading.TradeStateCancelled,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, external(err)
	}

	return mergeTrades(recent, cancelled), nil
}

func (s *Service) Withdrawals(ctx context.Context, steamID string) ([]domain.Withdrawal, error) {
	return s.withdrawalRepo.ListBySteamID(ctx, steamID)
}

func (s *Service) tradingUser(ctx context.Context, steamID string) (*domain.User, error) {
	user, err := s.userRepo.FindBySteamID(ctx, steamID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ledgerservice.ErrUserNotFound, steamID)
	}
	if !user.HasTradeLink() {
		return nil, ErrTradeLinkRequired
	}
	return user, nil
}

// SortByPrice orders items by guide price, most valuable first.
func SortByPrice(items []trading.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GuidePrice.GreaterThan(items[j].GuidePrice)
	})
}

func checkSelection(ids []string) error {
	if len(ids) == 0 {
		return ErrNoItemsSelected
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateItems, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// pick returns the float items named by ids, in ids order.
func pick(float []trading.Item, ids []string) ([]trading.Item, bool) {
	byID := make(map[string]trading.Item, len(float))
	for _, item := range float {
		byID[item.ID] = item
	}

	selected := make([]trading.Item, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, false
		}
		selected = append(selected, item)
	}
	return selected, true
}

func mergeTrades(recent, cancelled []trading.Trade) []trading.Trade {
	seen := make(map[int64]struct{}, len(recent)+len(cancelled))
	all := make([]trading.Trade, 0, len(recent)+len(cancelled))
	all = append(all, cancelled...)
	all = append(all, recent...)

	var first, rest []trading.Trade
	for _, trade := range all {
		if _, ok := seen[trade.ID]; ok {
			continue
		}
		seen[trade.ID] = struct{}{}
		if trade.Type == trading.TradeTypeWithdrawal && trade.State == trading.TradeStateCancelled {
			first = append(first, trade)
		} else {
			rest = append(rest, trade)
		}
	}

	byIDDesc := func(trades []trading.Trade) {
		sort.Slice(trades, func(i, j int) bool { return trades[i].ID > trades[j].ID })
	}
	byIDDesc(first)
	byIDDesc(rest)
	return append(first, rest...)
}

func external(err error) error {
	if errors.Is(err, trading.ErrExternalService) {
		return err
	}
	return fmt.Errorf("%w: %w", trading.ErrExternalService, err)
}
