package attendance

import (
	"time"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
)

// Pure derivation functions over the in-memory attendance collection. None of
// them mutate their inputs; callers recompute whenever the collection or the
// criteria change.

// Filter returns the records matching the criteria, preserving order. Date
// matching is at calendar-day precision; employee matching is strict string
// equality, so embedded references never match. Empty criteria is the
// identity.
func Filter(records []attendance.Record, criteria attendance.FilterCriteria) []attendance.Record {
	if criteria.IsZero() {
		return records
	}

	filtered := make([]attendance.Record, 0, len(records))
	for _, record := range records {
		if criteria.Date != "" && !sameDay(record.Date, criteria.Date) {
			continue
		}
		if criteria.EmployeeID != "" && !record.EmployeeID.Matches(criteria.EmployeeID) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// sameDay compares a record date against a YYYY-MM-DD filter value, truncating
// timestamps to the calendar day. Unparseable record dates never match.
func sameDay(recordDate, filterDate string) bool {
	parsed, ok := parseRecordDate(recordDate)
	if !ok {
		return false
	}
	return parsed.Format("2006-01-02") == filterDate
}

func parseRecordDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CountByStatus counts records where both the employee id and the status match
// by strict equality. Statuses outside Present/Absent are counted for their
// own literal value only.
func CountByStatus(records []attendance.Record, employeeID, status string) int {
	count := 0
	for _, record := range records {
		if record.EmployeeID.Matches(employeeID) && record.Status == status {
			count++
		}
	}
	return count
}

// CountRecords counts all of one employee's records regardless of status.
func CountRecords(records []attendance.Record, employeeID string) int {
	count := 0
	for _, record := range records {
		if record.EmployeeID.Matches(employeeID) {
			count++
		}
	}
	return count
}

// Summarize derives the per-employee stat block. Counts always run over the
// full collection, not a filtered subset.
func Summarize(records []attendance.Record, employeeID string) attendance.EmployeeSummary {
	return attendance.EmployeeSummary{
		EmployeeID:   employeeID,
		PresentDays:  CountByStatus(records, employeeID, attendance.StatusPresent),
		AbsentDays:   CountByStatus(records, employeeID, attendance.StatusAbsent),
		TotalRecords: CountRecords(records, employeeID),
	}
}

// ResolveName resolves a record's human-readable employee name. Resolution
// order: the record's own name, the embedded profile's name, a roster lookup,
// then the literal "Unknown".
func ResolveName(record attendance.Record, roster []employee.Employee) string {
	if record.EmployeeName != "" {
		return record.EmployeeName
	}
	if profile, ok := record.EmployeeID.Profile(); ok && profile.FullName != "" {
		return profile.FullName
	}
	if emp, ok := lookup(roster, record.EmployeeID); ok {
		return emp.FullName
	}
	return "Unknown"
}

// ResolveDepartment resolves a record's department. Records carry no own
// department field, so resolution starts at the embedded profile, then the
// roster, then the literal "N/A".
func ResolveDepartment(record attendance.Record, roster []employee.Employee) string {
	if profile, ok := record.EmployeeID.Profile(); ok && profile.Department != "" {
		return profile.Department
	}
	if emp, ok := lookup(roster, record.EmployeeID); ok {
		return emp.Department
	}
	return "N/A"
}

func lookup(roster []employee.Employee, ref attendance.EmployeeRef) (employee.Employee, bool) {
	for _, emp := range roster {
		if ref.Matches(emp.EmployeeID) {
			return emp, true
		}
	}
	return employee.Employee{}, false
}
