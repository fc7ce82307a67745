package schlep

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/schlep-engine/go-sdk/api"
	"github.com/schlep-engine/go-sdk/util"
)

// subscribeMessage is the handshake payload sent once after connecting.
type subscribeMessage struct {
	Action string           `json:"action"`
	Events api.StreamConfig `json:"events"`
	Auth   subscribeAuth    `json:"auth"`
}

type subscribeAuth struct {
	APIKey string `json:"api_key"`
}

// EventStream is a live websocket subscription to platform events. Events
// arrive on Events() in server order until the caller closes the stream or
// the connection drops. There is no automatic reconnect; after a drop the
// caller opens a new stream.
type EventStream struct {
	conn   *websocket.Conn
	events chan api.Event
	done   chan struct{}

	mu        sync.Mutex
	err       error
	closeOnce sync.Once
}

// Stream opens an event stream filtered by config. The stream stays open
// until Close is called, ctx is cancelled, or the connection fails; after
// Events() is drained, Err() reports why it ended (nil for a caller close).
func (c *Client) Stream(ctx context.Context, config api.StreamConfig) (*EventStream, error) {
	streamURL, err := websocketURL(c.cfg.BasePath)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)
	header.Set("User-Agent", c.cfg.UserAgent)

	dialer := websocket.Dialer{HandshakeTimeout: c.options.RequestTimeout}
	conn, resp, err := dialer.DialContext(ctx, streamURL, header)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, &HTTPError{Err: err}
	}

	subscribe := subscribeMessage{
		Action: "subscribe",
		Events: config,
		Auth:   subscribeAuth{APIKey: c.apiKey},
	}
	if err = conn.WriteJSON(subscribe); err != nil {
		conn.Close()
		return nil, &HTTPError{Err: err}
	}
	util.Debugf("stream subscribed at %s", streamURL)

	s := &EventStream{
		conn:   conn,
		events: make(chan api.Event, 16),
		done:   make(chan struct{}),
	}
	go s.watchContext(ctx)
	go s.readLoop()
	return s, nil
}

// Events yields decoded stream events. The channel closes when the stream
// ends for any reason.
func (s *EventStream) Events() <-chan api.Event {
	return s.events
}

// Err reports why the stream ended. It is nil while the stream is live and
// after a caller-initiated Close.
func (s *EventStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close tears down the connection. It is the only cancellation mechanism
// besides the context passed to Stream, and is safe to call more than once.
func (s *EventStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}

func (s *EventStream) watchContext(ctx context.Context) {
	select {
	case <-ctx.Done():
		s.Close()
	case <-s.done:
	}
}

func (s *EventStream) readLoop() {
	defer close(s.events)
	for {
		var event api.Event
		if err := s.conn.ReadJSON(&event); err != nil {
			s.setReadError(err)
			return
		}
		select {
		case s.events <- event:
		case <-s.done:
			return
		}
	}
}

// setReadError records the terminal error unless the caller already closed
// the stream, in which case the read failure is just the socket going away.
func (s *EventStream) setReadError(err error) {
	select {
	case <-s.done:
		return
	default:
	}
	util.Debugf("stream read failed: %v", err)
	s.mu.Lock()
	s.err = &HTTPError{Err: err}
	s.mu.Unlock()
	s.Close()
}

// websocketURL swaps the base URL's scheme for the websocket equivalent and
// appends the stream path.
func websocketURL(basePath string) (string, error) {
	u, err := url.Parse(basePath + "/stream")
	if err != nil {
		return "", &ConfigError{Message: "invalid base URL: " + err.Error()}
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	case "ws", "wss":
	default:
		return "", &ConfigError{Message: "unsupported scheme for streaming: " + u.Scheme}
	}
	return u.String(), nil
}
