package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// UsersService exposes the account profile and API key management API.
type UsersService service

// GetProfile fetches the authenticated user's profile.
func (s *UsersService) GetProfile(ctx context.Context) (api.UserProfile, error) {
	var profile api.UserProfile
	err := s.client.get(ctx, "/users/profile", nil, &profile)
	return profile, err
}

// UpdateProfile applies partial profile updates and returns the new profile.
func (s *UsersService) UpdateProfile(ctx context.Context, updates interface{}) (api.UserProfile, error) {
	var profile api.UserProfile
	err := s.client.put(ctx, "/users/profile", updates, &profile)
	return profile, err
}

// ListAPIKeys returns the account's issued API keys.
func (s *UsersService) ListAPIKeys(ctx context.Context) ([]api.APIKey, error) {
	var keys []api.APIKey
	err := s.client.get(ctx, "/users/api-keys", nil, &keys)
	return keys, err
}

// CreateAPIKey issues a new API key under the given name.
func (s *UsersService) CreateAPIKey(ctx context.Context, name string) (api.APIKey, error) {
	var key api.APIKey
	if name == "" {
		return key, errRequiredArgument("name")
	}
	body := map[string]interface{}{"name": name}
	err := s.client.post(ctx, "/users/api-keys", body, &key)
	return key, err
}

// RevokeAPIKey permanently revokes an API key.
func (s *UsersService) RevokeAPIKey(ctx context.Context, keyID string) error {
	if keyID == "" {
		return errRequiredArgument("keyID")
	}
	return s.client.delete(ctx, "/users/api-keys/"+keyID)
}
