package floatcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GlebRadaev/skinbet/pkg/trading"
)

// memSlot is an in-memory Slot with a controllable clock.
type memSlot struct {
	mu      sync.Mutex
	now     time.Time
	value   map[string][]byte
	expires map[string]time.Time
}

func newMemSlot() *memSlot {
	return &memSlot{
		now:     time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
		value:   map[string][]byte{},
		expires: map[string]time.Time{},
	}
}

func (s *memSlot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.value[key]
	if !ok || !s.now.Before(s.expires[key]) {
		return nil, ErrMiss
	}
	return v, nil
}

func (s *memSlot) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value[key] = value
	s.expires[key] = s.now.Add(ttl)
	return nil
}

func (s *memSlot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.value, key)
	delete(s.expires, key)
	return nil
}

func (s *memSlot) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

var floatItems = []trading.Item{
	{ID: "i1", GuidePrice: decimal.RequireFromString("3.10"), Tradable: true},
	{ID: "i2", GuidePrice: decimal.RequireFromString("1.25"), Tradable: true},
}

func TestCache_ServesSnapshotWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	slot := newMemSlot()
	cache := New(slot, lister, 0)

	lister.EXPECT().ListItems(gomock.Any(), trading.ItemFilter{State: trading.ItemStateDeposited}).
		Return(floatItems, nil).Times(2)

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	slot.advance(4*time.Minute + 59*time.Second)
	items, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "i1", items[0].ID)

	slot.advance(time.Second)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
}

func TestCache_InvalidateForcesFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	cache := New(newMemSlot(), lister, time.Minute)

	gomock.InOrder(
		lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems, nil),
		lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems[:1], nil),
	)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(context.Background()))

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCache_FailedFetchIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	cache := New(newMemSlot(), lister, time.Minute)

	gomock.InOrder(
		lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(nil, trading.ErrExternalService),
		lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems, nil),
	)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, trading.ErrExternalService)

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCache_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	slot := NewMockSlot(ctrl)
	cache := New(slot, lister, time.Minute)

	gomock.InOrder(
		slot.EXPECT().Delete(gomock.Any(), Key).Return(nil),
		lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems, nil),
		slot.EXPECT().Set(gomock.Any(), Key, gomock.Any(), time.Minute).Return(nil),
	)

	items, err := cache.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCache_SlotFailuresDegradeToLiveFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	slot := NewMockSlot(ctrl)
	cache := New(slot, lister, time.Minute)

	slot.EXPECT().Get(gomock.Any(), Key).Return(nil, errors.New("redis: connection refused"))
	lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems, nil)
	slot.EXPECT().Set(gomock.Any(), Key, gomock.Any(), time.Minute).Return(errors.New("redis: connection refused"))

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCache_UnreadableSnapshotIsRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockLister(ctrl)
	slot := NewMockSlot(ctrl)
	cache := New(slot, lister, time.Minute)

	core, logs := observer.New(zapcore.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	slot.EXPECT().Get(gomock.Any(), Key).Return([]byte("{not json"), nil)
	lister.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(floatItems, nil)
	slot.EXPECT().Set(gomock.Any(), Key, gomock.Any(), time.Minute).Return(nil)

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	entries := logs.FilterMessage("discarding unreadable float snapshot").All()
	require.Len(t, entries, 1)
	decodeErr, ok := entries[0].ContextMap()["error"].(string)
	require.True(t, ok, "decode error must be logged")
	assert.NotEmpty(t, decodeErr)
}

func TestCache_InvalidateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	slot := NewMockSlot(ctrl)
	cache := New(slot, NewMockLister(ctrl), time.Minute)

	slot.EXPECT().Delete(gomock.Any(), Key).Return(errors.New("redis down"))
	assert.Error(t, cache.Invalidate(context.Background()))
}
