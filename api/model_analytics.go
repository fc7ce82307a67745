package api

// QueryResult is the outcome of an analytics query.
type QueryResult struct {
	QueryID         string      `json:"query_id" validate:"required"`
	Results         interface{} `json:"results" validate:"required"`
	RowCount        int64       `json:"row_count"`
	ExecutionTimeMS int64       `json:"execution_time_ms,omitempty"`
}

// Report describes a generated analytics report.
type Report struct {
	ReportID string      `json:"report_id" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Status   string      `json:"status" validate:"required"`
	Data     interface{} `json:"data,omitempty"`
}

// Dataset describes a managed analytics dataset.
type Dataset struct {
	DatasetID   string `json:"dataset_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	RowCount    int64  `json:"row_count,omitempty"`
	ColumnCount int    `json:"column_count,omitempty"`
}
