package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendanceStats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetAttendance handles GET /attendance with optional date (YYYY-MM-DD) and
// employee_id filters; both compose with AND.
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	criteria := attendance.FilterCriteria{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	result, err := h.attendanceService.GetView(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeAttendance handles GET /attendance/employee/{employeeId}
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.attendanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAttendance handles POST /attendance
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.attendanceService.MarkAttendance(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully!", nil)
}

// GetAttendanceStats handles GET /attendance/stats
func (h *attendanceHandlerImpl) GetAttendanceStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
