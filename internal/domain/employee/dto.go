package employee

import (
	"github.com/hr-console/hr-console-gateway/internal/pkg/validator"
)

// Wire is the employee shape the upstream HR API returns and accepts.
type Wire struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "Full Name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email format",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToWire builds the creation payload the upstream accepts.
func (r CreateEmployeeRequest) ToWire() Wire {
	return Wire{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
	}
}
