package trading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	ErrStreamClosed   = errors.New("trade event stream closed")
	ErrMalformedEvent = errors.New("malformed trade event")
)

// Stream yields trade events in id order. Next blocks until a frame arrives.
type Stream interface {
	Next() (Event, error)
	Close() error
}

type WSStreamer struct {
	url    string
	apiKey string
	dialer *websocket.Dialer
}

func NewWSStreamer(streamURL, apiKey string) *WSStreamer {
	return &WSStreamer{
		url:    streamURL,
		apiKey: apiKey,
		dialer: websocket.DefaultDialer,
	}
}

// OpenStream resumes the stream after lastEventID.
func (s *WSStreamer) OpenStream(ctx context.Context, lastEventID int64) (Stream, error) {
	target, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("invalid stream address: %w", err)
	}
	query := target.Query()
	query.Set("last_event_id", strconv.FormatInt(lastEventID, 10))
	target.RawQuery = query.Encode()

	headers := http.Header{}
	if s.apiKey != "" {
		headers.Set(apiKeyHeader, s.apiKey)
	}
	conn, _, err := s.dialer.DialContext(ctx, target.String(), headers)
	if err != nil {
		return nil, fmt.Errorf("%w: dial stream: %w", ErrExternalService, err)
	}

	stream := &wsStream{conn: conn, done: make(chan struct{})}
	go func() {
		select {
		case <-ctx.Done():
			_ = stream.Close()
		case <-stream.done:
		}
	}()
	return stream, nil
}

type wsStream struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

func (s *wsStream) Next() (Event, error) {
	_, message, err := s.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			return Event{}, ErrStreamClosed
		}
		return Event{}, fmt.Errorf("%w: %w", ErrStreamClosed, err)
	}

	var event Event
	if err := json.Unmarshal(message, &event); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return event, nil
}

func (s *wsStream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}
