package dashboard

import (
	"context"

	"github.com/hr-console/hr-console-gateway/internal/domain/dashboard"
	"github.com/hr-console/hr-console-gateway/internal/upstream"
)

type DashboardServiceImpl struct {
	upstream *upstream.Client
}

func NewDashboardService(client *upstream.Client) dashboard.DashboardService {
	return &DashboardServiceImpl{upstream: client}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	w, err := s.upstream.GetDashboardStats(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	return dashboard.FromWire(w), nil
}
