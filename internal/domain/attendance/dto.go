package attendance

import (
	"github.com/hr-console/hr-console-gateway/internal/pkg/validator"
)

// RecordWire is the attendance shape the upstream HR API returns.
type RecordWire struct {
	ID           string      `json:"_id"`
	EmployeeID   EmployeeRef `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Date         string      `json:"date"`
	Status       string      `json:"status"`
	Remarks      string      `json:"remarks,omitempty"`
}

// CreateWire is the creation payload the upstream accepts. Remarks and the
// record id are never sent on create.
type CreateWire struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// FilterCriteria narrows the attendance collection. Both filters compose with
// logical AND; an empty criteria is the identity.
type FilterCriteria struct {
	Date       string
	EmployeeID string
}

func (c FilterCriteria) IsZero() bool {
	return c.Date == "" && c.EmployeeID == ""
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Please select an employee",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToWire builds the creation payload for submission.
func (r MarkAttendanceRequest) ToWire() CreateWire {
	return CreateWire{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     r.Status,
	}
}

// EmployeeSummary is the derived per-employee block shown while an employee
// filter is active.
type EmployeeSummary struct {
	EmployeeID   string `json:"employeeId"`
	PresentDays  int    `json:"presentDays"`
	AbsentDays   int    `json:"absentDays"`
	TotalRecords int    `json:"totalRecords"`
}

// RecordView is one rendered table row: the record plus the resolved
// human-readable employee name and department.
type RecordView struct {
	Record
	ResolvedName       string `json:"resolvedName"`
	ResolvedDepartment string `json:"resolvedDepartment"`
}

// ViewResponse is what the attendance screen receives for one mount: the
// filtered rows and, when an employee filter is active, that employee's
// summary computed over the full collection.
type ViewResponse struct {
	Records []RecordView     `json:"records"`
	Summary *EmployeeSummary `json:"summary,omitempty"`
}
