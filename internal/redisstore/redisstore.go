package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/floatcache"
)

const CursorKey = "last-event-id"

func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	zap.L().Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// Slot stores opaque values under a key with an expiry.
type Slot struct {
	rdb redis.Cmdable
}

func NewSlot(rdb redis.Cmdable) *Slot {
	return &Slot{rdb: rdb}
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, floatcache.ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Slot) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *Slot) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// advanceScript only ever moves the cursor forward.
var advanceScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local next = tonumber(ARGV[1])
if next > current then
	redis.call('SET', KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// Cursor is the durable id of the last trade event fully handled.
type Cursor struct {
	rdb redis.Cmdable
	key string
}

func NewCursor(rdb redis.Cmdable) *Cursor {
	return &Cursor{rdb: rdb, key: CursorKey}
}

// Load returns 0 when no cursor has been stored yet.
func (c *Cursor) Load(ctx context.Context) (int64, error) {
	raw, err := c.rdb.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load cursor: %w", err)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt cursor %q: %w", raw, err)
	}
	return id, nil
}

// Save stores id unless the stored cursor is already at or past it.
func (c *Cursor) Save(ctx context.Context, id int64) error {
	if err := advanceScript.Run(ctx, c.rdb, []string{c.key}, id).Err(); err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}
