package notify

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	TypeDepositCredited   = "deposit.credited"
	TypeBetPlaced         = "bet.placed"
	TypeWithdrawalDebited = "withdrawal.debited"
)

// Event describes a committed ledger change.
type Event struct {
	Type      string          `json:"type"`
	SteamID   string          `json:"steam_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	At        time.Time       `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
	}
}

type KafkaPublisher struct {
	writer Writer
}

func NewKafkaPublisher(writer Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes the event keyed by steam id so one user's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode ledger event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SteamID),
		Value: value,
		Time:  event.At,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("failed to publish ledger event", zap.String("type", event.Type), zap.Error(err))
		return err
	}

	zap.L().Debug("published ledger event", zap.String("type", event.Type), zap.String("steamID", event.SteamID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop discards every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Best publishes and only logs a failure. Ledger state is already committed.
func Best(ctx context.Context, p Publisher, event Event) {
	if err := p.Publish(ctx, event); err != nil {
		zap.L().Warn("ledger notification dropped", zap.String("type", event.Type), zap.String("steamID", event.SteamID), zap.Error(err))
	}
}
