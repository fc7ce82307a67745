package api

// UserProfile is the authenticated user's account information.
type UserProfile struct {
	UserID    string `json:"user_id" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// APIKey describes an issued API key. Only the prefix is ever returned.
type APIKey struct {
	KeyID      string `json:"key_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	KeyPrefix  string `json:"key_prefix" validate:"required"`
	CreatedAt  string `json:"created_at,omitempty"`
	LastUsedAt string `json:"last_used_at,omitempty"`
}
