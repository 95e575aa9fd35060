package employee

// Employee is the view model the browser binds to. ID always mirrors
// EmployeeID; no independent identifier is ever derived.
type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
