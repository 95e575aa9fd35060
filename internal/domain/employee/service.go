package employee

import "context"

// EmployeeService defines the employee view operations
type EmployeeService interface {
	// ListEmployees returns the full roster as view models
	ListEmployees(ctx context.Context) ([]Employee, error)

	// SearchEmployees returns roster entries matching the search term
	SearchEmployees(ctx context.Context, term string) ([]Employee, error)

	// GetEmployee returns one employee by id
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// CreateEmployee validates the form and submits it upstream
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes one employee upstream
	DeleteEmployee(ctx context.Context, id string) error
}
