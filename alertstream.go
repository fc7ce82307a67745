package schlep

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/launchdarkly/eventsource"

	"github.com/schlep-engine/go-sdk/api"
	"github.com/schlep-engine/go-sdk/util"
)

// AlertStream is a live server-sent-events feed of monitoring alerts.
// Unlike the main event stream it reconnects on its own with backoff, since
// alert feeds are meant to be left running unattended.
type AlertStream struct {
	stream *eventsource.Stream
	alerts chan api.Alert
	done   chan struct{}

	closeOnce sync.Once
}

// StreamAlerts subscribes to the live alert feed. Alerts arrive on Alerts()
// until Close is called or ctx is cancelled.
func (s *MonitoringService) StreamAlerts(ctx context.Context) (*AlertStream, error) {
	client := s.client
	req, err := http.NewRequest(http.MethodGet, client.cfg.BasePath+"/monitoring/alerts/stream", nil)
	if err != nil {
		return nil, &ConfigError{Message: "cannot build request: " + err.Error()}
	}
	client.setCommonHeaders(req)

	// SSE connections outlive any sane request timeout, so share the
	// transport but not the timeout.
	sseClient := &http.Client{Transport: client.cfg.HTTPClient.Transport}

	errorHandler := func(err error) eventsource.StreamErrorHandlerResult {
		util.Debugf("alert stream error: %v", err)
		return eventsource.StreamErrorHandlerResult{CloseNow: false}
	}

	stream, err := eventsource.SubscribeWithRequestAndOptions(req,
		eventsource.StreamOptionCanRetryFirstConnection(client.options.RequestTimeout),
		eventsource.StreamOptionErrorHandler(errorHandler),
		eventsource.StreamOptionUseBackoff(client.options.RequestTimeout),
		eventsource.StreamOptionUseJitter(0.25),
		eventsource.StreamOptionHTTPClient(sseClient))
	if err != nil {
		return nil, &HTTPError{Err: err}
	}

	a := &AlertStream{
		stream: stream,
		alerts: make(chan api.Alert, 16),
		done:   make(chan struct{}),
	}
	go a.watchContext(ctx)
	go a.readLoop()
	return a, nil
}

// Alerts yields decoded alerts. The channel closes when the stream ends.
func (a *AlertStream) Alerts() <-chan api.Alert {
	return a.alerts
}

// Close tears down the feed. Safe to call more than once.
func (a *AlertStream) Close() {
	a.closeOnce.Do(func() {
		close(a.done)
		a.stream.Close()
	})
}

func (a *AlertStream) watchContext(ctx context.Context) {
	select {
	case <-ctx.Done():
		a.Close()
	case <-a.done:
	}
}

func (a *AlertStream) readLoop() {
	defer close(a.alerts)
	for {
		select {
		case <-a.done:
			return
		case event, ok := <-a.stream.Events:
			if !ok {
				return
			}
			var alert api.Alert
			if err := json.Unmarshal([]byte(event.Data()), &alert); err != nil {
				util.Debugf("skipping undecodable alert event: %v", err)
				continue
			}
			select {
			case a.alerts <- alert:
			case <-a.done:
				return
			}
		}
	}
}
