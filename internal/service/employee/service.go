package employee

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
	"github.com/hr-console/hr-console-gateway/internal/upstream"
	"github.com/hr-console/hr-console-gateway/internal/viewstate"
)

type EmployeeServiceImpl struct {
	upstream *upstream.Client
	store    *viewstate.Store[[]employee.Employee]
}

func NewEmployeeService(client *upstream.Client) employee.EmployeeService {
	return &EmployeeServiceImpl{
		upstream: client,
		store:    viewstate.NewStore[[]employee.Employee](),
	}
}

// FilterEmployees returns roster entries whose full name, employee id, email
// or department contains the term, case-insensitively. An empty term is the
// identity. Order is preserved; the input is never mutated.
func FilterEmployees(employees []employee.Employee, term string) []employee.Employee {
	if term == "" {
		return employees
	}

	needle := strings.ToLower(term)
	filtered := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.FullName), needle) ||
			strings.Contains(strings.ToLower(emp.EmployeeID), needle) ||
			strings.Contains(strings.ToLower(emp.Email), needle) ||
			strings.Contains(strings.ToLower(emp.Department), needle) {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}

// loadRoster fetches and maps the roster, replacing the snapshot wholesale.
// A response from a superseded load is discarded in favor of the newer one.
func (s *EmployeeServiceImpl) loadRoster(ctx context.Context) ([]employee.Employee, error) {
	token := s.store.Begin()

	wires, err := s.upstream.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	roster, err := employee.FromWireList(wires)
	if err != nil {
		return nil, err
	}

	snapshot, applied := s.store.Commit(token, roster)
	if applied {
		return snapshot.Data, nil
	}

	// Superseded by a newer load. Serve its snapshot when it has landed;
	// until then this load's own fetch is the only completed one.
	current, ok := s.store.Current()
	if !ok {
		return roster, nil
	}
	return current.Data, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.loadRoster(ctx)
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, term string) ([]employee.Employee, error) {
	roster, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEmployees(roster, term), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	w, err := s.upstream.GetEmployee(ctx, id)
	if err != nil {
		return employee.Employee{}, notFoundAsSentinel(err)
	}
	return employee.FromWire(w)
}

// CreateEmployee implements employee.EmployeeService. Validation failures
// block the upstream call entirely; no request is issued.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if err := s.upstream.CreateEmployee(ctx, req.ToWire()); err != nil {
		return employee.Employee{}, err
	}

	return employee.FromWire(req.ToWire())
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return notFoundAsSentinel(s.upstream.DeleteEmployee(ctx, id))
}

// notFoundAsSentinel turns an upstream 404 on a by-id path into the domain
// sentinel; other errors pass through to the upstream-status mapping.
func notFoundAsSentinel(err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return employee.ErrEmployeeNotFound
	}
	return err
}
