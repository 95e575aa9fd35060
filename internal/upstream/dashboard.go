package upstream

import (
	"context"
	"fmt"

	"github.com/hr-console/hr-console-gateway/internal/domain/dashboard"
)

// GetDashboardStats calls GET /dashboard/stats.
func (c *Client) GetDashboardStats(ctx context.Context) (dashboard.StatsWire, error) {
	var out dashboard.StatsWire
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/dashboard/stats")
	if err != nil {
		return dashboard.StatsWire{}, fmt.Errorf("get dashboard stats: %w", err)
	}
	if resp.IsError() {
		return dashboard.StatsWire{}, apiError(resp)
	}
	return out, nil
}
