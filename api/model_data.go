package api

// ProcessingJob describes a data processing job and its current state.
type ProcessingJob struct {
	JobID     string      `json:"job_id" validate:"required"`
	Status    string      `json:"status" validate:"required"`
	Result    interface{} `json:"result,omitempty"`
	CreatedAt string      `json:"created_at,omitempty"`
	UpdatedAt string      `json:"updated_at,omitempty"`
}

// Transformation is the outcome of applying transformations to a job's data.
type Transformation struct {
	JobID                  string   `json:"job_id" validate:"required"`
	Status                 string   `json:"status" validate:"required"`
	TransformationsApplied []string `json:"transformations_applied,omitempty"`
}

// SchemaValidation reports whether processed data conforms to a schema.
type SchemaValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
