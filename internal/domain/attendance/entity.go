package attendance

import (
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
)

// Attendance statuses the form can submit. Other values do occur on historical
// wire data and are passed through untouched; aggregates count by strict
// equality only.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Record is the attendance view model.
type Record struct {
	ID           string      `json:"id"`
	EmployeeID   EmployeeRef `json:"employeeId"`
	EmployeeName string      `json:"employeeName"`
	Date         string      `json:"date"`
	Status       string      `json:"status"`
	Remarks      string      `json:"remarks,omitempty"`
}

// View is the per-mount snapshot the attendance screen renders from: the full
// record collection plus the roster used for name resolution. Both are
// replaced wholesale on every load.
type View struct {
	Records   []Record            `json:"records"`
	Employees []employee.Employee `json:"employees"`
}
