package attendance

import (
	"context"
	"encoding/json"
)

// AttendanceService defines the attendance view operations
type AttendanceService interface {
	// GetView loads the collections, applies the filter criteria and derives
	// the per-employee summary when an employee filter is active
	GetView(ctx context.Context, criteria FilterCriteria) (*ViewResponse, error)

	// ListByEmployee returns one employee's records
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// MarkAttendance validates the form and submits it upstream
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) error

	// GetStats proxies the upstream attendance summary statistics
	GetStats(ctx context.Context) (json.RawMessage, error)
}
