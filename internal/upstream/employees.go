package upstream

import (
	"context"
	"fmt"

	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
)

// ListEmployees calls GET /employees.
func (c *Client) ListEmployees(ctx context.Context) ([]employee.Wire, error) {
	var out []employee.Wire
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/employees")
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

// GetEmployee calls GET /employees/{id}.
func (c *Client) GetEmployee(ctx context.Context, id string) (employee.Wire, error) {
	var out employee.Wire
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get("/employees/{id}")
	if err != nil {
		return employee.Wire{}, fmt.Errorf("get employee: %w", err)
	}
	if resp.IsError() {
		return employee.Wire{}, apiError(resp)
	}
	return out, nil
}

// CreateEmployee calls POST /employees.
func (c *Client) CreateEmployee(ctx context.Context, payload employee.Wire) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/employees")
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// DeleteEmployee calls DELETE /employees/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/employees/{id}")
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
