package dashboard

// Stats is the flat view model the dashboard screen binds to.
//
// AttendanceRate is a string: when the upstream supplies the percentage it is
// formatted to exactly two decimal places, and when it is absent the value is
// the literal "0" (not "0.00"). The asymmetry is contractual.
type Stats struct {
	TotalEmployees      int               `json:"totalEmployees"`
	PresentToday        int               `json:"presentToday"`
	TotalAttendance     int               `json:"totalAttendance"`
	AttendanceRate      string            `json:"attendanceRate"`
	DepartmentBreakdown []DepartmentCount `json:"departmentBreakdown"`
	RecentAttendance    []RecentEntry     `json:"recentAttendance"`
}

// RecentEntry is one recent-activity row. The rename rules match the
// attendance record mapper; the recent-activity view needs no id or remarks.
type RecentEntry struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
