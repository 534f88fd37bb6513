package response

import (
	"errors"
	"net/http"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/domain/employee"
	"github.com/realsteps/presence-backend-go/internal/domain/report"
	"github.com/realsteps/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMobileExists):
		Conflict(w, "Mobile number already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidBankCode):
		BadRequest(w, "Unknown bank code", nil)

	// Biometric domain errors
	case errors.Is(err, biometric.ErrNotEnrolled):
		NotFound(w, "No biometric enrollment found")
	case errors.Is(err, biometric.ErrModalityNotEnrolled):
		Forbidden(w, "Scan modality is not enrolled")
	case errors.Is(err, biometric.ErrBiometricMismatch):
		Forbidden(w, "Biometric sample does not match stored reference")
	case errors.Is(err, biometric.ErrNoBiometricFeatures):
		BadRequest(w, "No biometric features detected in sample", nil)
	case errors.Is(err, biometric.ErrInvalidModality):
		BadRequest(w, "Scan modality must be face or fingerprint", nil)
	case errors.Is(err, biometric.ErrMatcherUnavailable):
		BadGateway(w, "Biometric matching service unavailable")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrDeviceMismatch):
		Forbidden(w, "Scan device does not match enrolled device")
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active attendance session", nil)
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Report domain errors
	case errors.Is(err, report.ErrSessionNotOpen):
		BadRequest(w, "Attendance session is not open for reporting", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
