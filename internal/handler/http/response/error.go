package response

import (
	"errors"
	"net/http"

	"github.com/hr-console/hr-console-gateway/internal/domain/attendance"
	"github.com/hr-console/hr-console-gateway/internal/domain/employee"
	"github.com/hr-console/hr-console-gateway/internal/pkg/validator"
	"github.com/hr-console/hr-console-gateway/internal/pkg/wire"
	"github.com/hr-console/hr-console-gateway/internal/upstream"
)

// HandleError maps domain errors to HTTP responses. No failure here is fatal:
// every error degrades to a message the browser can display while the view
// stays interactive.
func HandleError(w http.ResponseWriter, err error) {
	// Local form validation: resolved entirely on this side, reported per field
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed upstream payload
	var shapeErr *wire.Error
	if errors.As(err, &shapeErr) {
		BadGateway(w, shapeErr.Error())
		return
	}

	// Upstream replied non-2xx: surface the server-supplied message with the
	// same status it used
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		UpstreamError(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default: transport-level failure or unexpected condition
	default:
		InternalServerError(w, "Failed to reach the HR API")
	}
}
