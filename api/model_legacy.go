package api

// The flat upload/train/deploy/status surface predates the namespaced API.
// Both are served by the platform, so both are kept here.

// UploadResult is returned by the legacy /upload endpoint.
type UploadResult struct {
	JobID   string `json:"job_id" validate:"required"`
	Status  string `json:"status" validate:"required"`
	Message string `json:"message,omitempty"`
}

// TrainResult is returned by the legacy /train endpoint.
type TrainResult struct {
	JobID   string `json:"job_id" validate:"required"`
	ModelID string `json:"model_id,omitempty"`
	Status  string `json:"status" validate:"required"`
	Message string `json:"message,omitempty"`
}

// DeployResult is returned by the legacy /deploy endpoint.
type DeployResult struct {
	DeploymentID string `json:"deployment_id" validate:"required"`
	EndpointURL  string `json:"endpoint_url" validate:"required"`
	Status       string `json:"status" validate:"required"`
	Message      string `json:"message,omitempty"`
}

// JobStatus is returned by the legacy /status/{id} endpoint.
type JobStatus struct {
	JobID     string      `json:"job_id" validate:"required"`
	Status    string      `json:"status" validate:"required"`
	Progress  float64     `json:"progress,omitempty"`
	Result    interface{} `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt string      `json:"created_at,omitempty"`
	UpdatedAt string      `json:"updated_at,omitempty"`
}
