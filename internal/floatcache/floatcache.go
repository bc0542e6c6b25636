package floatcache

//go:generate mockgen -source=floatcache.go -destination=mock_floatcache.go -package=floatcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/metrics"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

const (
	Key        = "float"
	DefaultTTL = 5 * time.Minute
)

// ErrMiss is returned by a Slot when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Lister interface {
	ListItems(ctx context.Context, filter trading.ItemFilter) ([]trading.Item, error)
}

// Cache keeps a snapshot of the deposited items available for withdrawal.
// It is not a lock: concurrent readers may see a snapshot taken just before an
// invalidation, and the last writer wins.
type Cache struct {
	slot   Slot
	lister Lister
	ttl    time.Duration
}

func New(slot Slot, lister Lister, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		slot:   slot,
		lister: lister,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context) ([]trading.Item, error) {
	raw, err := c.slot.Get(ctx, Key)
	switch {
	case err == nil:
		var items []trading.Item
		decodeErr := json.Unmarshal(raw, &items)
		if decodeErr == nil {
			metrics.FloatCache.WithLabelValues("hit").Inc()
			return items, nil
		}
		zap.L().Warn("discarding unreadable float snapshot", zap.Error(decodeErr))
	case errors.Is(err, ErrMiss):
	default:
		zap.L().Warn("float cache read failed, fetching live", zap.Error(err))
	}

	metrics.FloatCache.WithLabelValues("miss").Inc()
	return c.fetch(ctx)
}

// Invalidate drops the snapshot so the next Get fetches fresh state.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.slot.Delete(ctx, Key); err != nil {
		zap.L().Error("failed to invalidate float cache", zap.Error(err))
		return err
	}
	return nil
}

func (c *Cache) Refresh(ctx context.Context) ([]trading.Item, error) {
	_ = c.Invalidate(ctx)
	return c.fetch(ctx)
}

func (c *Cache) fetch(ctx context.Context) ([]trading.Item, error) {
	items, err := c.lister.ListItems(ctx, trading.ItemFilter{State: trading.ItemStateDeposited})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return items, nil
	}
	if err := c.slot.Set(ctx, Key, raw, c.ttl); err != nil {
		zap.L().Warn("failed to store float snapshot", zap.Error(err))
	}
	return items, nil
}
