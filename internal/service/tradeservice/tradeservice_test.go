package tradeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

const (
	steamID   = "76561198000000001"
	tradeLink = "https://steamcommunity.com/tradeoffer/new/?partner=39734273&token=abcdEFGH"
)

type mocks struct {
	trading        *MockTrading
	cache          *MockFloatCache
	userRepo       *MockUserRepo
	withdrawalRepo *MockWithdrawalRepo
	ledger         *MockLedger
	publisher      *notify.MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		trading:        NewMockTrading(ctrl),
		cache:          NewMockFloatCache(ctrl),
		userRepo:       NewMockUserRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		ledger:         NewMockLedger(ctrl),
		publisher:      notify.NewMockPublisher(ctrl),
	}
	return New(m.trading, m.cache, m.userRepo, m.withdrawalRepo, m.ledger, m.publisher), m
}

func linkedUser(credit string) *domain.User {
	link := tradeLink
	return &domain.User{SteamID: steamID, Credit: decimal.RequireFromString(credit), TradeLink: &link}
}

func item(id, price string) trading.Item {
	return trading.Item{ID: id, GuidePrice: decimal.RequireFromString(price), Tradable: true}
}

func TestService_Withdraw(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		itemIDs     []string
		prepareMock func()
		wantErr     error
		wantTotal   string
	}{
		{
			name:    "Debits guide price total",
			itemIDs: []string{"a", "b"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("a", "3.10"), item("b", "1.25"), item("c", "9")}, nil)
				m.trading.EXPECT().CreateWithdrawal(gomock.Any(), tradeLink, []string{"a", "b"}).Return(trading.Trade{ID: 77}, nil)
				m.ledger.EXPECT().RecordWithdrawal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Withdrawal) error {
						assert.True(t, w.Total.Equal(decimal.RequireFromString("4.35")))
						assert.Equal(t, []string{"a", "b"}, w.ItemIDs)
						return nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e notify.Event) error {
						assert.Equal(t, notify.TypeWithdrawalDebited, e.Type)
						assert.Equal(t, "trade:77", e.Reference)
						return nil
					})
			},
			wantTotal: "4.35",
		},
		{
			name:    "Refreshes once when snapshot is stale",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("c", "9")}, nil)
				m.cache.EXPECT().Refresh(gomock.Any()).Return([]trading.Item{item("a", "2")}, nil)
				m.trading.EXPECT().CreateWithdrawal(gomock.Any(), tradeLink, []string{"a"}).Return(trading.Trade{ID: 78}, nil)
				m.ledger.EXPECT().RecordWithdrawal(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
			wantTotal: "2",
		},
		{
			name:    "Item still missing after refresh",
			itemIDs: []string{"x", "y"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("100"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("x", "5")}, nil)
				m.cache.EXPECT().Refresh(gomock.Any()).Return([]trading.Item{item("x", "5")}, nil)
			},
			wantErr: ErrItemsUnavailable,
		},
		{
			name:    "Total above credit",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("1"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("a", "1.01")}, nil)
			},
			wantErr: ledgerservice.ErrInsufficientCredit,
		},
		{
			name:    "Trading service rejects withdrawal",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("a", "1")}, nil)
				m.trading.EXPECT().CreateWithdrawal(gomock.Any(), tradeLink, []string{"a"}).
					Return(trading.Trade{}, &trading.Failure{Status: 400, Reason: "bot offline"})
			},
			wantErr: trading.ErrExternalService,
		},
		{
			name:    "Debit fails after trade was sent",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return([]trading.Item{item("a", "1")}, nil)
				gomock.InOrder(
					m.trading.EXPECT().CreateWithdrawal(gomock.Any(), tradeLink, []string{"a"}).Return(trading.Trade{ID: 79}, nil),
					m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
					m.ledger.EXPECT().RecordWithdrawal(gomock.Any(), gomock.Any()).Return(pg.ErrStore),
				)
			},
			wantErr: pg.ErrStore,
		},
		{
			name:    "Cache unavailable",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
				m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("dial tcp: refused"))
			},
			wantErr: trading.ErrExternalService,
		},
		{
			name:    "Duplicate item ids",
			itemIDs: []string{"a", "a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
			},
			wantErr: ErrDuplicateItems,
		},
		{
			name:    "Nothing selected",
			itemIDs: nil,
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("10"), nil)
			},
			wantErr: ErrNoItemsSelected,
		},
		{
			name:    "No trade link",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).
					Return(&domain.User{SteamID: steamID, Credit: decimal.NewFromInt(10)}, nil)
			},
			wantErr: ErrTradeLinkRequired,
		},
		{
			name:    "Unknown user",
			itemIDs: []string{"a"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(nil, nil)
			},
			wantErr: ledgerservice.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			withdrawal, err := service.Withdraw(context.Background(), steamID, tt.itemIDs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, withdrawal)
				return
			}
			require.NoError(t, err)
			assert.True(t, withdrawal.Total.Equal(decimal.RequireFromString(tt.wantTotal)))
			assert.Equal(t, steamID, withdrawal.SteamID)
		})
	}
}

func TestService_Deposit(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		assetIDs    []string
		prepareMock func()
		wantErr     error
	}{
		{
			name:     "Creates deposit offer",
			assetIDs: []string{"1001", "1002"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("0"), nil)
				m.trading.EXPECT().CreateDeposit(gomock.Any(), tradeLink, []string{"1001", "1002"}).
					Return(trading.Trade{ID: 5, Type: trading.TradeTypeDeposit}, nil)
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Trading service down",
			assetIDs: []string{"1001"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("0"), nil)
				m.trading.EXPECT().CreateDeposit(gomock.Any(), tradeLink, []string{"1001"}).
					Return(trading.Trade{}, errors.New("connection reset"))
			},
			wantErr: trading.ErrExternalService,
		},
		{
			name:     "Nothing selected",
			assetIDs: []string{},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(linkedUser("0"), nil)
			},
			wantErr: ErrNoItemsSelected,
		},
		{
			name:     "Store error",
			assetIDs: []string{"1001"},
			prepareMock: func() {
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(nil, pg.ErrStore)
			},
			wantErr: pg.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			trade, err := service.Deposit(context.Background(), steamID, tt.assetIDs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), trade.ID)
		})
	}
}

func TestService_DepositableInventory(t *testing.T) {
	service, m := NewMock(t)

	untradable := item("u", "10")
	untradable.Tradable = false
	m.trading.EXPECT().LoadInventory(gomock.Any(), steamID).Return([]trading.Item{
		item("cheap", "0.50"),
		item("free", "0"),
		untradable,
		item("limit", "400"),
		item("dear", "399.99"),
		item("mid", "12"),
	}, nil)

	items, err := service.DepositableInventory(context.Background(), steamID)
	require.NoError(t, err)

	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"dear", "mid", "cheap"}, ids)
}

func TestService_Trades(t *testing.T) {
	service, m := NewMock(t)

	m.trading.EXPECT().ListTrades(gomock.Any(), trading.TradeFilter{UserSteamID: steamID, Limit: 30, Sort: "desc"}).
		Return([]trading.Trade{
			{ID: 12, Type: trading.TradeTypeDeposit, State: trading.TradeStateComplete},
			{ID: 10, Type: trading.TradeTypeWithdrawal, State: trading.TradeStateCancelled},
			{ID: 11, Type: trading.TradeTypeWithdrawal, State: trading.TradeStateComplete},
		}, nil)
	m.trading.EXPECT().ListTrades(gomock.Any(), trading.TradeFilter{
		UserSteamID: steamID,
		Type:        trading.TradeTypeWithdrawal,
		State:       trading.TradeStateCancelled,
	}).Return([]trading.Trade{
		{ID: 3, Type: trading.TradeTypeWithdrawal, State: trading.TradeStateCancelled},
		{ID: 10, Type: trading.TradeTypeWithdrawal, State: trading.TradeStateCancelled},
	}, nil)

	trades, err := service.Trades(context.Background(), steamID)
	require.NoError(t, err)

	var ids []int64
	for _, trade := range trades {
		ids = append(ids, trade.ID)
	}
	assert.Equal(t, []int64{10, 3, 12, 11}, ids)
}

func TestService_TradesFailure(t *testing.T) {
	service, m := NewMock(t)

	m.trading.EXPECT().ListTrades(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.trading.EXPECT().ListTrades(gomock.Any(), gomock.Any()).Return(nil, &trading.Failure{Status: 500, Reason: "boom"})

	_, err := service.Trades(context.Background(), steamID)
	assert.ErrorIs(t, err, trading.ErrExternalService)
}

func TestService_Withdrawals(t *testing.T) {
	service, m := NewMock(t)

	want := []domain.Withdrawal{{SteamID: steamID, ItemIDs: []string{"a"}, Total: decimal.NewFromInt(2)}}
	m.withdrawalRepo.EXPECT().ListBySteamID(gomock.Any(), steamID).Return(want, nil)

	got, err := service.Withdrawals(context.Background(), steamID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
