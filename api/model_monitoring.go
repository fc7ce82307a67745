package api

// Metrics is a point-in-time metrics snapshot.
type Metrics struct {
	Metrics   interface{} `json:"metrics" validate:"required"`
	Timestamp string      `json:"timestamp" validate:"required"`
}

// Health reports platform component status.
type Health struct {
	Status     string            `json:"status" validate:"required"`
	Version    string            `json:"version,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

// Alert is a monitoring alert raised by the platform.
type Alert struct {
	AlertID   string `json:"alert_id" validate:"required"`
	AlertType string `json:"alert_type" validate:"required"`
	Severity  string `json:"severity" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}
