package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/pg/pgtest"
)

const steamID = "76561198000000001"

type mocks struct {
	userRepo       *MockUserRepo
	eventRepo      *MockEventRepo
	withdrawalRepo *MockWithdrawalRepo
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo:       NewMockUserRepo(ctrl),
		eventRepo:      NewMockEventRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	return New(m.userRepo, m.eventRepo, m.withdrawalRepo, m.txManager), m
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr error
	}{
		{name: "rounds to cents", amount: "12.345", want: "12.35"},
		{name: "keeps whole", amount: "7", want: "7"},
		{name: "zero", amount: "0", wantErr: ErrInvalidAmount},
		{name: "rounds down to zero", amount: "0.004", wantErr: ErrInvalidAmount},
		{name: "negative", amount: "-1", wantErr: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestService_CreditUser(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		amount      decimal.Decimal
		prepareMock func()
		wantErr     error
	}{
		{
			name:   "Credits user",
			amount: decimal.RequireFromString("12.50"),
			prepareMock: func() {
				m.userRepo.EXPECT().AddCredit(gomock.Any(), steamID, pgtest.Decimal("12.50")).Return(true, nil)
			},
		},
		{
			name:   "Unknown user",
			amount: decimal.NewFromInt(1),
			prepareMock: func() {
				m.userRepo.EXPECT().AddCredit(gomock.Any(), steamID, pgtest.Decimal("1")).Return(false, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:        "Non-positive amount",
			amount:      decimal.Zero,
			prepareMock: func() {},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:   "Store failure",
			amount: decimal.NewFromInt(1),
			prepareMock: func() {
				m.userRepo.EXPECT().AddCredit(gomock.Any(), steamID, gomock.Any()).
					Return(false, pg.StoreError("add credit", errors.New("conn reset")))
			},
			wantErr: pg.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.CreditUser(context.Background(), steamID, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_DebitUser(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
	}{
		{
			name: "Debits user",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, pgtest.Decimal("6")).Return(true, nil)
			},
		},
		{
			name: "Insufficient credit",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, pgtest.Decimal("6")).Return(false, nil)
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).
					Return(&domain.User{SteamID: steamID, Credit: decimal.NewFromInt(5)}, nil)
			},
			wantErr: ErrInsufficientCredit,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, pgtest.Decimal("6")).Return(false, nil)
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, pgtest.Decimal("6")).
					Return(false, pg.StoreError("subtract credit", errors.New("timeout")))
			},
			wantErr: pg.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DebitUser(context.Background(), steamID, decimal.NewFromInt(6))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ApplyDeposit(t *testing.T) {
	service, m := NewMock(t)
	deposit := domain.Deposit{EventID: 11, TradeID: 5, SteamID: steamID, Amount: decimal.RequireFromString("12.50")}

	tests := []struct {
		name        string
		prepareMock func()
		wantApplied bool
		wantErr     error
	}{
		{
			name: "Fresh event is credited",
			prepareMock: func() {
				m.eventRepo.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d domain.Deposit) (bool, error) {
						assert.Equal(t, int64(11), d.EventID)
						assert.Equal(t, int64(5), d.TradeID)
						assert.True(t, d.Amount.Equal(decimal.RequireFromString("12.5")))
						return true, nil
					})
				m.userRepo.EXPECT().AddCredit(gomock.Any(), steamID, pgtest.Decimal("12.50")).Return(true, nil)
			},
			wantApplied: true,
		},
		{
			name: "Replayed event is not credited",
			prepareMock: func() {
				m.eventRepo.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "Unknown user rolls back the mark",
			prepareMock: func() {
				m.eventRepo.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).Return(true, nil)
				m.userRepo.EXPECT().AddCredit(gomock.Any(), steamID, gomock.Any()).Return(false, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				m.eventRepo.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).
					Return(false, pg.StoreError("mark event applied", errors.New("down")))
			},
			wantErr: pg.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			applied, err := service.ApplyDeposit(context.Background(), deposit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestService_RecordWithdrawal(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
	}{
		{
			name: "Debits and stores withdrawal",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, pgtest.Decimal("7.5")).Return(true, nil)
				m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Insufficient credit stores nothing",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, gomock.Any()).Return(false, nil)
				m.userRepo.EXPECT().FindBySteamID(gomock.Any(), steamID).
					Return(&domain.User{SteamID: steamID, Credit: decimal.NewFromInt(1)}, nil)
			},
			wantErr: ErrInsufficientCredit,
		},
		{
			name: "Store failure on insert",
			prepareMock: func() {
				m.userRepo.EXPECT().SubtractCredit(gomock.Any(), steamID, gomock.Any()).Return(true, nil)
				m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(pg.StoreError("create withdrawal", errors.New("down")))
			},
			wantErr: pg.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.RecordWithdrawal(context.Background(), &domain.Withdrawal{
				SteamID: steamID,
				ItemIDs: []string{"a", "b"},
				Total:   decimal.RequireFromString("7.50"),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// memStore is an in-memory ledger with the same guards as the SQL repositories.
type memStore struct {
	mu          sync.Mutex
	credit      map[string]decimal.Decimal
	applied     map[int64]bool
	trades      map[int64]bool
	withdrawals []domain.Withdrawal
}

func newMemStore(credit map[string]decimal.Decimal) *memStore {
	return &memStore{credit: credit, applied: map[int64]bool{}, trades: map[int64]bool{}}
}

func (s *memStore) FindBySteamID(_ context.Context, steamID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.credit[steamID]
	if !ok {
		return nil, nil
	}
	return &domain.User{SteamID: steamID, Credit: c}, nil
}

func (s *memStore) AddCredit(_ context.Context, steamID string, amount decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.credit[steamID]
	if !ok {
		return false, nil
	}
	s.credit[steamID] = c.Add(amount)
	return true, nil
}

func (s *memStore) SubtractCredit(_ context.Context, steamID string, amount decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.credit[steamID]
	if !ok || c.LessThan(amount) {
		return false, nil
	}
	s.credit[steamID] = c.Sub(amount)
	return true, nil
}

func (s *memStore) MarkApplied(_ context.Context, deposit domain.Deposit) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied[deposit.EventID] || s.trades[deposit.TradeID] {
		return false, nil
	}
	s.applied[deposit.EventID] = true
	s.trades[deposit.TradeID] = true
	return true, nil
}

func (s *memStore) Create(_ context.Context, withdrawal *domain.Withdrawal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withdrawals = append(s.withdrawals, *withdrawal)
	return nil
}

func (s *memStore) balance(steamID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credit[steamID]
}

type passTx struct{}

func (passTx) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

func (passTx) BeginWithOptions(ctx context.Context, _ pgx.TxOptions, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func TestService_DepositCreditsOnce(t *testing.T) {
	store := newMemStore(map[string]decimal.Decimal{steamID: decimal.Zero})
	service := New(store, store, store, passTx{})
	deposit := domain.Deposit{EventID: 1, TradeID: 77, SteamID: steamID, Amount: decimal.RequireFromString("12.50")}

	applied, err := service.ApplyDeposit(context.Background(), deposit)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, decimal.RequireFromString("12.50").Equal(store.balance(steamID)))

	applied, err = service.ApplyDeposit(context.Background(), deposit)
	require.NoError(t, err)
	assert.False(t, applied)

	deposit.EventID = 2
	applied, err = service.ApplyDeposit(context.Background(), deposit)
	require.NoError(t, err)
	assert.False(t, applied, "same trade under a new event id")
	assert.True(t, decimal.RequireFromString("12.50").Equal(store.balance(steamID)))
}

func TestService_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	store := newMemStore(map[string]decimal.Decimal{steamID: decimal.NewFromInt(100)})
	service := New(store, store, store, passTx{})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := service.DebitUser(context.Background(), steamID, decimal.NewFromInt(10))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrInsufficientCredit)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.True(t, store.balance(steamID).IsZero())
}
