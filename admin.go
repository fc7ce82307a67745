package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// AdminService exposes the administrative API. Requires an admin API key.
type AdminService service

// ListUsers pages through platform user accounts in server order.
func (s *AdminService) ListUsers(ctx context.Context, params *api.ListParams) (api.PaginatedResponse[api.UserSummary], error) {
	var page api.PaginatedResponse[api.UserSummary]
	err := s.client.get(ctx, "/admin/users", params.Values(), &page)
	return page, err
}

// GetSystemStats returns platform-wide usage statistics.
func (s *AdminService) GetSystemStats(ctx context.Context) (api.SystemStats, error) {
	var stats api.SystemStats
	err := s.client.get(ctx, "/admin/stats", nil, &stats)
	return stats, err
}
