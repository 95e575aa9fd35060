package http

import (
	"net/http"

	"github.com/hr-console/hr-console-gateway/internal/domain/dashboard"
	"github.com/hr-console/hr-console-gateway/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboardStats returns the flattened dashboard summary
	GetDashboardStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboardStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
