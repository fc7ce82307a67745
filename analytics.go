package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// AnalyticsService exposes the analytics API: ad-hoc queries, reports and
// managed datasets.
type AnalyticsService service

// ExecuteQuery runs an analytics query and returns its result rows.
func (s *AnalyticsService) ExecuteQuery(ctx context.Context, query interface{}) (api.QueryResult, error) {
	var result api.QueryResult
	err := s.client.post(ctx, "/analytics/query", query, &result)
	return result, err
}

// CreateReport schedules report generation.
func (s *AnalyticsService) CreateReport(ctx context.Context, config interface{}) (api.Report, error) {
	var report api.Report
	err := s.client.post(ctx, "/analytics/reports", config, &report)
	return report, err
}

// GetReport fetches a report, including its data once generated.
func (s *AnalyticsService) GetReport(ctx context.Context, reportID string) (api.Report, error) {
	var report api.Report
	if reportID == "" {
		return report, errRequiredArgument("reportID")
	}
	err := s.client.get(ctx, "/analytics/reports/"+reportID, nil, &report)
	return report, err
}

// CreateDataset registers a managed dataset.
func (s *AnalyticsService) CreateDataset(ctx context.Context, config interface{}) (api.Dataset, error) {
	var dataset api.Dataset
	err := s.client.post(ctx, "/analytics/datasets", config, &dataset)
	return dataset, err
}

// GetDataset fetches dataset metadata.
func (s *AnalyticsService) GetDataset(ctx context.Context, datasetID string) (api.Dataset, error) {
	var dataset api.Dataset
	if datasetID == "" {
		return dataset, errRequiredArgument("datasetID")
	}
	err := s.client.get(ctx, "/analytics/datasets/"+datasetID, nil, &dataset)
	return dataset, err
}
