package dashboard

import "strconv"

// Defaulting table for the nested stats payload. Missing and null are both
// "absent"; a zero the server actually sent passes through untouched.
//
//	data.summary.total_employees             -> 0
//	data.summary.today_present               -> 0
//	data.summary.total_attendance_records    -> 0
//	data.summary.today_attendance_percentage -> "0" (present values: "%.2f")
//	data.departments                         -> []
//	data.recent_attendance                   -> []
//
// An absent summary object defaults every summary field at once.

// FromWire flattens the nested payload into the view model.
func FromWire(w StatsWire) Stats {
	summary := w.Data.Summary
	if summary == nil {
		summary = &SummaryWire{}
	}

	return Stats{
		TotalEmployees:      intOrZero(summary.TotalEmployees),
		PresentToday:        intOrZero(summary.TodayPresent),
		TotalAttendance:     intOrZero(summary.TotalAttendanceRecords),
		AttendanceRate:      rateOrZero(summary.TodayAttendancePercentage),
		DepartmentBreakdown: departmentsOrEmpty(w.Data.Departments),
		RecentAttendance:    recentFromWire(w.Data.RecentAttendance),
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func rateOrZero(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func departmentsOrEmpty(departments []DepartmentCount) []DepartmentCount {
	if departments == nil {
		return []DepartmentCount{}
	}
	return departments
}

func recentFromWire(wires []RecentWire) []RecentEntry {
	entries := make([]RecentEntry, 0, len(wires))
	for _, w := range wires {
		entries = append(entries, RecentEntry{
			EmployeeID:   w.EmployeeID,
			EmployeeName: w.EmployeeName,
			Date:         w.Date,
			Status:       w.Status,
		})
	}
	return entries
}
