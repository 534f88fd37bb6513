package biometric

import (
	"context"
	"time"
)

type EnrollmentRepository interface {
	// GetByEmployeeID retrieves the employee's enrollment record.
	GetByEmployeeID(ctx context.Context, employeeID string) (Enrollment, error)

	// Upsert creates or overwrites the enrollment keyed by employee.
	// Re-enrollment of an already-successful modality overwrites it.
	Upsert(ctx context.Context, enrollment Enrollment) (Enrollment, error)

	// TouchLastUsed stamps last_used_at after a successful scan verification.
	TouchLastUsed(ctx context.Context, employeeID string, usedAt time.Time) error
}
