package employee

import (
	"github.com/hr-console/hr-console-gateway/internal/pkg/validator"
	"github.com/hr-console/hr-console-gateway/internal/pkg/wire"
)

// FromWire maps one upstream employee to its view model. Every caller in the
// system depends on employee_id being present, so its absence is an error
// rather than a defaultable gap.
func FromWire(w Wire) (Employee, error) {
	if validator.IsEmpty(w.EmployeeID) {
		return Employee{}, &wire.Error{Entity: "employee", Field: "employee_id"}
	}

	return Employee{
		ID:         w.EmployeeID,
		EmployeeID: w.EmployeeID,
		FullName:   w.FullName,
		Email:      w.Email,
		Department: w.Department,
	}, nil
}

// FromWireList maps a full response, preserving order. No deduplication.
func FromWireList(wires []Wire) ([]Employee, error) {
	employees := make([]Employee, 0, len(wires))
	for _, w := range wires {
		emp, err := FromWire(w)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// ToWire is the inverse mapping used for creation requests. The derived ID is
// dropped; the upstream does not accept it on create.
func ToWire(e Employee) Wire {
	return Wire{
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
}
