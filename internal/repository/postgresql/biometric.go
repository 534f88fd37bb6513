package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/database"
)

type enrollmentRepository struct {
	db *database.DB
}

const enrollmentColumns = `
	id, employee_id, device_id, public_key,
	face_enrolled, face_enrolled_at, fingerprint_enrolled, fingerprint_enrolled_at,
	face_reference, fingerprint_reference,
	status, last_used_at, created_at, updated_at
`

func scanEnrollment(row pgx.Row) (biometric.Enrollment, error) {
	var e biometric.Enrollment
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.DeviceID, &e.PublicKey,
		&e.FaceEnrolled, &e.FaceEnrolledAt, &e.FingerprintEnrolled, &e.FingerprintEnrolledAt,
		&e.FaceReference, &e.FingerprintReference,
		&e.Status, &e.LastUsedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByEmployeeID implements biometric.EnrollmentRepository.
func (r *enrollmentRepository) GetByEmployeeID(ctx context.Context, employeeID string) (biometric.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + enrollmentColumns + ` FROM biometric_enrollments WHERE employee_id = $1`

	enrollment, err := scanEnrollment(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return biometric.Enrollment{}, biometric.ErrNotEnrolled
		}
		return biometric.Enrollment{}, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return enrollment, nil
}

// Upsert implements biometric.EnrollmentRepository. The enrollment is keyed by
// employee_id, so re-enrollment overwrites the existing row in place.
func (r *enrollmentRepository) Upsert(ctx context.Context, enrollment biometric.Enrollment) (biometric.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	if enrollment.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return biometric.Enrollment{}, fmt.Errorf("failed to generate enrollment id: %w", err)
		}
		enrollment.ID = id.String()
	}

	query := `
		INSERT INTO biometric_enrollments (
			id, employee_id, device_id, public_key,
			face_enrolled, face_enrolled_at, fingerprint_enrolled, fingerprint_enrolled_at,
			face_reference, fingerprint_reference, status, last_used_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id) DO UPDATE SET
			device_id               = EXCLUDED.device_id,
			public_key              = EXCLUDED.public_key,
			face_enrolled           = EXCLUDED.face_enrolled,
			face_enrolled_at        = EXCLUDED.face_enrolled_at,
			fingerprint_enrolled    = EXCLUDED.fingerprint_enrolled,
			fingerprint_enrolled_at = EXCLUDED.fingerprint_enrolled_at,
			face_reference          = EXCLUDED.face_reference,
			fingerprint_reference   = EXCLUDED.fingerprint_reference,
			status                  = EXCLUDED.status,
			last_used_at            = EXCLUDED.last_used_at,
			updated_at              = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		enrollment.ID,
		enrollment.EmployeeID,
		enrollment.DeviceID,
		enrollment.PublicKey,
		enrollment.FaceEnrolled,
		enrollment.FaceEnrolledAt,
		enrollment.FingerprintEnrolled,
		enrollment.FingerprintEnrolledAt,
		enrollment.FaceReference,
		enrollment.FingerprintReference,
		enrollment.Status,
		enrollment.LastUsedAt,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)

	if err != nil {
		return biometric.Enrollment{}, fmt.Errorf("failed to upsert enrollment: %w", err)
	}

	return enrollment, nil
}

// TouchLastUsed implements biometric.EnrollmentRepository.
func (r *enrollmentRepository) TouchLastUsed(ctx context.Context, employeeID string, usedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE biometric_enrollments SET last_used_at = $1, updated_at = $1 WHERE employee_id = $2`

	commandTag, err := q.Exec(ctx, query, usedAt.UTC(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to stamp last_used_at: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return biometric.ErrNotEnrolled
	}

	return nil
}

func NewEnrollmentRepository(db *database.DB) biometric.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}
