package dashboard

// StatsWire is the nested dashboard payload the upstream returns. Summary
// fields are pointers so a missing or null field is distinguishable from a
// zero the server actually sent.
type StatsWire struct {
	Data StatsDataWire `json:"data"`
}

type StatsDataWire struct {
	Summary          *SummaryWire      `json:"summary"`
	Departments      []DepartmentCount `json:"departments"`
	RecentAttendance []RecentWire      `json:"recent_attendance"`
}

type SummaryWire struct {
	TotalEmployees            *int     `json:"total_employees"`
	TodayPresent              *int     `json:"today_present"`
	TotalAttendanceRecords    *int     `json:"total_attendance_records"`
	TodayAttendancePercentage *float64 `json:"today_attendance_percentage"`
}

// DepartmentCount passes through unchanged; the wire and view shapes agree.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// RecentWire is one recent-activity entry as the upstream returns it.
type RecentWire struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
