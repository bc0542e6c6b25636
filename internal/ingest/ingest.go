package ingest

//go:generate mockgen -source=ingest.go -destination=mock_ingest.go -package=ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/metrics"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/pkg/logger"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

const (
	reconnectDelay = 3 * time.Second
	minBackoff     = time.Second
	maxBackoff     = 30 * time.Second
)

type Streamer interface {
	OpenStream(ctx context.Context, lastEventID int64) (trading.Stream, error)
}

type CursorStore interface {
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, id int64) error
}

type Ledger interface {
	ApplyDeposit(ctx context.Context, deposit domain.Deposit) (bool, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service applies completed deposits from the trade event stream, one event at a time.
//
// Each event is applied first and the cursor advanced after. A crash in between
// redelivers the event, and ApplyDeposit ignores event ids it has already credited.
type Service struct {
	streamer  Streamer
	cursor    CursorStore
	ledger    Ledger
	cache     Invalidator
	publisher notify.Publisher

	reconnectDelay time.Duration
	minBackoff     time.Duration
	maxBackoff     time.Duration
}

func New(streamer Streamer, cursor CursorStore, ledger Ledger, cache Invalidator, publisher notify.Publisher) *Service {
	return &Service{
		streamer:       streamer,
		cursor:         cursor,
		ledger:         ledger,
		cache:          cache,
		publisher:      publisher,
		reconnectDelay: reconnectDelay,
		minBackoff:     minBackoff,
		maxBackoff:     maxBackoff,
	}
}

// Run consumes the stream until ctx is done, reconnecting from the durable
// cursor whenever the stream drops.
func (s *Service) Run(ctx context.Context) error {
	zap.L().Info("Event ingestor started")
	for {
		err := s.consume(ctx)
		if ctx.Err() != nil {
			zap.L().Info("Context canceled, stopping event ingestor")
			return ctx.Err()
		}
		zap.L().Warn("trade stream interrupted, reconnecting",
			zap.Duration("after", s.reconnectDelay),
			zap.Error(err),
		)
		if err := sleep(ctx, s.reconnectDelay); err != nil {
			return err
		}
	}
}

func (s *Service) consume(ctx context.Context) error {
	cursor, err := s.cursor.Load(ctx)
	if err != nil {
		return err
	}

	stream, err := s.streamer.OpenStream(ctx, cursor)
	if err != nil {
		return err
	}
	defer stream.Close()
	zap.L().Info("trade stream opened", zap.Int64("lastEventID", cursor))

	for {
		event, err := stream.Next()
		if errors.Is(err, trading.ErrMalformedEvent) {
			metrics.TradeEvents.WithLabelValues("malformed").Inc()
			zap.L().Warn("skipping unreadable trade event", zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}

		if event.ID <= cursor {
			metrics.TradeEvents.WithLabelValues("skipped").Inc()
			continue
		}

		if err := s.retry(ctx, "apply event", func() error { return s.handle(ctx, event) }); err != nil {
			return err
		}
		if err := s.retry(ctx, "save cursor", func() error { return s.cursor.Save(ctx, event.ID) }); err != nil {
			return err
		}
		cursor = event.ID
	}
}

// handle returns only errors worth retrying. Events that can never be credited
// are logged for reconciliation and treated as handled.
func (s *Service) handle(ctx context.Context, event trading.Event) error {
	if event.Type != trading.EventTypeTrades {
		metrics.TradeEvents.WithLabelValues("ignored").Inc()
		return nil
	}

	var trade trading.Trade
	if err := json.Unmarshal(event.Data, &trade); err != nil {
		metrics.TradeEvents.WithLabelValues("malformed").Inc()
		logger.Reconcile("undecodable trade event", zap.Int64("eventID", event.ID), zap.Error(err))
		return nil
	}
	if trade.Type != trading.TradeTypeDeposit || trade.State != trading.TradeStateComplete {
		metrics.TradeEvents.WithLabelValues("ignored").Inc()
		return nil
	}

	deposit := domain.Deposit{
		EventID: event.ID,
		TradeID: trade.ID,
		SteamID: trade.UserSteamID,
		Amount:  trading.SumGuidePrice(trade.Items),
	}
	applied, err := s.ledger.ApplyDeposit(ctx, deposit)
	switch {
	case errors.Is(err, ledgerservice.ErrUserNotFound), errors.Is(err, ledgerservice.ErrInvalidAmount):
		metrics.TradeEvents.WithLabelValues("rejected").Inc()
		logger.Reconcile("deposit not credited",
			zap.Int64("eventID", event.ID),
			zap.Int64("tradeID", trade.ID),
			zap.String("steamID", trade.UserSteamID),
			zap.String("amount", deposit.Amount.String()),
			zap.Error(err),
		)
		return nil
	case err != nil:
		metrics.TradeEvents.WithLabelValues("failed").Inc()
		return err
	}

	if !applied {
		metrics.TradeEvents.WithLabelValues("duplicate").Inc()
		zap.L().Info("deposit already credited", zap.Int64("eventID", event.ID), zap.Int64("tradeID", trade.ID))
		return nil
	}

	metrics.TradeEvents.WithLabelValues("credited").Inc()
	_ = s.cache.Invalidate(ctx)
	notify.Best(ctx, s.publisher, notify.Event{
		Type:      notify.TypeDepositCredited,
		SteamID:   trade.UserSteamID,
		Amount:    deposit.Amount.Round(2),
		Reference: fmt.Sprintf("trade:%d", trade.ID),
	})
	return nil
}

// retry repeats fn with exponential backoff until it succeeds or ctx is done.
func (s *Service) retry(ctx context.Context, op string, fn func() error) error {
	delay := s.minBackoff
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		zap.L().Error("ingest step failed, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Duration("retryAfter", delay),
			zap.Error(err),
		)
		if err := sleep(ctx, delay); err != nil {
			return err
		}
		delay = min(delay*2, s.maxBackoff)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
