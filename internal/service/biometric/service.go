package biometric

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/domain/employee"
)

type RegistryServiceImpl struct {
	enrollmentRepo biometric.EnrollmentRepository
	employeeRepo   employee.EmployeeRepository
	matcher        biometric.Matcher
}

func NewRegistryService(
	enrollmentRepo biometric.EnrollmentRepository,
	employeeRepo employee.EmployeeRepository,
	matcher biometric.Matcher,
) biometric.RegistryService {
	return &RegistryServiceImpl{
		enrollmentRepo: enrollmentRepo,
		employeeRepo:   employeeRepo,
		matcher:        matcher,
	}
}

// Enroll implements biometric.RegistryService. Enrollment is an idempotent
// upsert keyed by employee: re-enrolling an already-successful modality
// overwrites the stored reference after the matcher confirms the new sample.
func (s *RegistryServiceImpl) Enroll(ctx context.Context, req biometric.EnrollRequest, now time.Time) (biometric.EnrollmentResponse, error) {
	if err := req.Validate(); err != nil {
		return biometric.EnrollmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return biometric.EnrollmentResponse{}, employee.ErrEmployeeNotFound
		}
		return biometric.EnrollmentResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	enrollment, err := s.enrollmentRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, biometric.ErrNotEnrolled) {
			return biometric.EnrollmentResponse{}, fmt.Errorf("failed to load enrollment: %w", err)
		}
		enrollment = biometric.Enrollment{
			EmployeeID: req.EmployeeID,
			Status:     biometric.StatusPending,
		}
	}

	// A modality already on file means this is a re-enrollment: the new
	// reference must match the stored one before it may overwrite it.
	if enrollment.ModalityEnrolled(req.Modality) {
		matched, err := s.matcher.Compare(ctx, req.ReferenceSample, enrollment.Reference(req.Modality))
		if err != nil {
			if errors.Is(err, biometric.ErrNoBiometricFeatures) {
				enrollment.Status = biometric.StatusFailed
				if _, upErr := s.enrollmentRepo.Upsert(ctx, enrollment); upErr != nil {
					return biometric.EnrollmentResponse{}, fmt.Errorf("failed to record enrollment failure: %w", upErr)
				}
				return biometric.EnrollmentResponse{}, biometric.ErrNoBiometricFeatures
			}
			return biometric.EnrollmentResponse{}, fmt.Errorf("matcher comparison failed: %w", err)
		}
		if !matched {
			return biometric.EnrollmentResponse{}, biometric.ErrBiometricMismatch
		}
	}

	enrollment.DeviceID = req.DeviceID
	enrollment.PublicKey = req.PublicKey

	switch req.Modality {
	case biometric.ModalityFace:
		enrollment.FaceEnrolled = true
		enrollment.FaceEnrolledAt = &now
		enrollment.FaceReference = req.ReferenceSample
	case biometric.ModalityFingerprint:
		enrollment.FingerprintEnrolled = true
		enrollment.FingerprintEnrolledAt = &now
		enrollment.FingerprintReference = req.ReferenceSample
	default:
		return biometric.EnrollmentResponse{}, biometric.ErrInvalidModality
	}

	enrollment.Status = deriveStatus(enrollment)

	saved, err := s.enrollmentRepo.Upsert(ctx, enrollment)
	if err != nil {
		return biometric.EnrollmentResponse{}, fmt.Errorf("failed to save enrollment: %w", err)
	}

	return mapEnrollmentToResponse(saved), nil
}

// deriveStatus computes the overall enrollment status from its modality flags.
// It runs inside the mutating operation so the stored status can never drift
// from its inputs.
func deriveStatus(e biometric.Enrollment) biometric.EnrollmentStatus {
	if e.FaceEnrolled || e.FingerprintEnrolled {
		return biometric.StatusSuccess
	}
	return biometric.StatusPending
}

// IsModalityUsable implements biometric.RegistryService.
func (s *RegistryServiceImpl) IsModalityUsable(ctx context.Context, employeeID string, modality biometric.Modality) (bool, error) {
	enrollment, err := s.enrollmentRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, biometric.ErrNotEnrolled) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load enrollment: %w", err)
	}

	return enrollment.DeviceID != "" && enrollment.ModalityEnrolled(modality), nil
}

// BoundDevice implements biometric.RegistryService.
func (s *RegistryServiceImpl) BoundDevice(ctx context.Context, employeeID string) (string, error) {
	enrollment, err := s.enrollmentRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, biometric.ErrNotEnrolled) {
			return "", biometric.ErrNotEnrolled
		}
		return "", fmt.Errorf("failed to load enrollment: %w", err)
	}

	return enrollment.DeviceID, nil
}

// VerifyScan implements biometric.RegistryService.
func (s *RegistryServiceImpl) VerifyScan(ctx context.Context, employeeID string, modality biometric.Modality, probe []byte, now time.Time) error {
	enrollment, err := s.enrollmentRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, biometric.ErrNotEnrolled) {
			return biometric.ErrNotEnrolled
		}
		return fmt.Errorf("failed to load enrollment: %w", err)
	}

	if !enrollment.ModalityEnrolled(modality) {
		return biometric.ErrModalityNotEnrolled
	}

	matched, err := s.matcher.Compare(ctx, probe, enrollment.Reference(modality))
	if err != nil {
		if errors.Is(err, biometric.ErrNoBiometricFeatures) || errors.Is(err, biometric.ErrMatcherUnavailable) {
			return err
		}
		return fmt.Errorf("matcher comparison failed: %w", err)
	}
	if !matched {
		return biometric.ErrBiometricMismatch
	}

	if err := s.enrollmentRepo.TouchLastUsed(ctx, employeeID, now); err != nil {
		return fmt.Errorf("failed to stamp last_used_at: %w", err)
	}

	return nil
}

// GetEnrollment implements biometric.RegistryService.
func (s *RegistryServiceImpl) GetEnrollment(ctx context.Context, employeeID string) (biometric.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, biometric.ErrNotEnrolled) {
			return biometric.EnrollmentResponse{}, biometric.ErrNotEnrolled
		}
		return biometric.EnrollmentResponse{}, fmt.Errorf("failed to load enrollment: %w", err)
	}

	return mapEnrollmentToResponse(enrollment), nil
}

func mapEnrollmentToResponse(e biometric.Enrollment) biometric.EnrollmentResponse {
	return biometric.EnrollmentResponse{
		EmployeeID:            e.EmployeeID,
		DeviceID:              e.DeviceID,
		FaceEnrolled:          e.FaceEnrolled,
		FaceEnrolledAt:        e.FaceEnrolledAt,
		FingerprintEnrolled:   e.FingerprintEnrolled,
		FingerprintEnrolledAt: e.FingerprintEnrolledAt,
		Status:                e.Status,
		LastUsedAt:            e.LastUsedAt,
	}
}
