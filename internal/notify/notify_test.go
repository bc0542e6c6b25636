package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	at := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	event := Event{
		Type:      TypeDepositCredited,
		SteamID:   "76561198000000001",
		Amount:    decimal.RequireFromString("12.50"),
		Reference: "trade:55",
		At:        at,
	}

	tests := []struct {
		name        string
		prepareMock func(w *MockWriter)
		expectErr   bool
	}{
		{
			name: "Writes keyed message",
			prepareMock: func(w *MockWriter) {
				w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, []byte("76561198000000001"), msgs[0].Key)
						assert.Equal(t, at, msgs[0].Time)

						var got Event
						require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
						assert.Equal(t, TypeDepositCredited, got.Type)
						assert.True(t, got.Amount.Equal(decimal.RequireFromString("12.5")))
						return nil
					})
			},
		},
		{
			name: "Broker failure is returned",
			prepareMock: func(w *MockWriter) {
				w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := NewMockWriter(ctrl)
			tt.prepareMock(writer)

			err := NewKafkaPublisher(writer).Publish(context.Background(), event)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaPublisher_StampsTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := NewMockWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.False(t, msgs[0].Time.IsZero())
			return nil
		})
	writer.EXPECT().Close().Return(nil)

	p := NewKafkaPublisher(writer)
	require.NoError(t, p.Publish(context.Background(), Event{Type: TypeBetPlaced, SteamID: "1"}))
	require.NoError(t, p.Close())
}

func TestBest(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("down"))

	assert.NotPanics(t, func() {
		Best(context.Background(), publisher, Event{Type: TypeWithdrawalDebited})
	})
	assert.NoError(t, Nop{}.Publish(context.Background(), Event{}))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "ledger.events")
	assert.Equal(t, "ledger.events", w.Topic)
	assert.NoError(t, w.Close())
}
