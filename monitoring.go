package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// MonitoringService exposes the monitoring API: metrics, health and alerts.
// Live alert streaming lives in alertstream.go.
type MonitoringService service

// GetMetrics queries a metrics snapshot. params is the platform's metrics
// query document (names, window, aggregation).
func (s *MonitoringService) GetMetrics(ctx context.Context, params interface{}) (api.Metrics, error) {
	var metrics api.Metrics
	err := s.client.post(ctx, "/monitoring/metrics", params, &metrics)
	return metrics, err
}

// GetHealth reports platform component health.
func (s *MonitoringService) GetHealth(ctx context.Context) (api.Health, error) {
	var health api.Health
	err := s.client.get(ctx, "/monitoring/health", nil, &health)
	return health, err
}

// ListAlerts returns the currently raised alerts.
func (s *MonitoringService) ListAlerts(ctx context.Context) ([]api.Alert, error) {
	var alerts []api.Alert
	err := s.client.get(ctx, "/monitoring/alerts", nil, &alerts)
	return alerts, err
}
