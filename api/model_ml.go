package api

// Pipeline describes an ML pipeline.
type Pipeline struct {
	PipelineID string      `json:"pipeline_id" validate:"required"`
	Name       string      `json:"name" validate:"required"`
	Status     string      `json:"status" validate:"required"`
	Config     interface{} `json:"config,omitempty"`
	CreatedAt  string      `json:"created_at,omitempty"`
}

// TrainingJob tracks a pipeline training run.
type TrainingJob struct {
	JobID      string      `json:"job_id" validate:"required"`
	PipelineID string      `json:"pipeline_id,omitempty"`
	Status     string      `json:"status" validate:"required"`
	Progress   float64     `json:"progress,omitempty"`
	ModelID    string      `json:"model_id,omitempty"`
	Metrics    interface{} `json:"metrics,omitempty"`
}

// Deployment describes a model serving endpoint.
type Deployment struct {
	DeploymentID string `json:"deployment_id" validate:"required"`
	ModelID      string `json:"model_id" validate:"required"`
	EndpointURL  string `json:"endpoint_url" validate:"required"`
	Status       string `json:"status" validate:"required"`
}

// Prediction holds the output of a deployed model.
type Prediction struct {
	Predictions   interface{} `json:"predictions" validate:"required"`
	ModelID       string      `json:"model_id" validate:"required"`
	Probabilities interface{} `json:"probabilities,omitempty"`
}
