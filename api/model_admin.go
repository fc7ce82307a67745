package api

// UserSummary is how admin endpoints describe a user account.
type UserSummary struct {
	UserID       string `json:"user_id" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Status       string `json:"status" validate:"required"`
	RegisteredAt string `json:"registered_at,omitempty"`
}

// SystemStats is a platform-wide usage snapshot.
type SystemStats struct {
	TotalUsers      int64                  `json:"total_users"`
	TotalJobs       int64                  `json:"total_jobs"`
	ActiveJobs      int64                  `json:"active_jobs"`
	AdditionalStats map[string]interface{} `json:"additional_stats,omitempty"`
}
