package dashboard

import "context"

// DashboardService defines the dashboard view operations
type DashboardService interface {
	// GetStats fetches and flattens the dashboard summary, once per mount
	GetStats(ctx context.Context) (Stats, error)
}
