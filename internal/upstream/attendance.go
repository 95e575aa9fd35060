package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
)

// ListAttendance calls GET /attendance.
func (c *Client) ListAttendance(ctx context.Context) ([]attendance.RecordWire, error) {
	var out []attendance.RecordWire
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/attendance")
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

// ListAttendanceByEmployee calls GET /attendance/employee/{employeeId}.
func (c *Client) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]attendance.RecordWire, error) {
	var out []attendance.RecordWire
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("employeeId", employeeID).
		SetResult(&out).
		Get("/attendance/employee/{employeeId}")
	if err != nil {
		return nil, fmt.Errorf("list attendance by employee: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

// CreateAttendance calls POST /attendance.
func (c *Client) CreateAttendance(ctx context.Context, payload attendance.CreateWire) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/attendance")
	if err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// GetAttendanceStats calls GET /attendance/stats. The payload is served to the
// browser as-is, so it stays raw JSON.
func (c *Client) GetAttendanceStats(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/attendance/stats")
	if err != nil {
		return nil, fmt.Errorf("get attendance stats: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return json.RawMessage(resp.Body()), nil
}
