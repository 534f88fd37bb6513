package biometric

import (
	"context"
	"time"
)

// RegistryService gates which scan modalities an employee can use for
// attendance and owns the enrollment lifecycle.
type RegistryService interface {
	// Enroll registers a modality for the employee. The first enrollment of a
	// modality stores the supplied reference sample directly; re-enrollment
	// verifies the new sample against the matcher before overwriting.
	Enroll(ctx context.Context, req EnrollRequest, now time.Time) (EnrollmentResponse, error)

	// IsModalityUsable reports whether the employee may scan with the modality:
	// an enrollment exists, its device id is non-empty, and the modality flag is true.
	IsModalityUsable(ctx context.Context, employeeID string, modality Modality) (bool, error)

	// BoundDevice returns the device id recorded at enrollment.
	BoundDevice(ctx context.Context, employeeID string) (string, error)

	// VerifyScan compares a live probe sample against the stored reference for
	// the modality and stamps last_used_at on success.
	VerifyScan(ctx context.Context, employeeID string, modality Modality, probe []byte, now time.Time) error

	// GetEnrollment returns the employee's enrollment record.
	GetEnrollment(ctx context.Context, employeeID string) (EnrollmentResponse, error)
}
