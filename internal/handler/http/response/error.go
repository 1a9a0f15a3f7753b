package response

import (
	"errors"
	"net/http"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/domain/unit"
	"github.com/echal/gembira-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Malformed calendar input is rejected before any data is touched
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be a valid YYYY-MM-DD calendar date", nil)
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Period must be a valid YYYY-MM calendar month", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Directory domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, unit.ErrUnitNotFound):
		NotFound(w, "Unit not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
