package biometric

import (
	"time"

	"github.com/realsteps/presence-backend-go/internal/pkg/validator"
)

type EnrollRequest struct {
	EmployeeID string   `json:"-"`
	Modality   Modality `json:"modality"`
	DeviceID   string   `json:"device_id"`
	PublicKey  string   `json:"public_key"`

	// ReferenceSample is the newly captured sample that becomes the stored
	// reference for the modality. Assertion is the device-signed proof of the
	// capture; both arrive base64-encoded.
	ReferenceSample []byte `json:"reference_sample"`
	Assertion       []byte `json:"assertion"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Modality.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "modality",
			Message: "modality must be face or fingerprint",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if validator.IsEmpty(r.PublicKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "public_key",
			Message: "public_key is required",
		})
	}

	if len(r.ReferenceSample) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_sample",
			Message: "reference_sample is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollmentResponse struct {
	EmployeeID            string           `json:"employee_id"`
	DeviceID              string           `json:"device_id"`
	FaceEnrolled          bool             `json:"face_enrolled"`
	FaceEnrolledAt        *time.Time       `json:"face_enrolled_at,omitempty"`
	FingerprintEnrolled   bool             `json:"fingerprint_enrolled"`
	FingerprintEnrolledAt *time.Time       `json:"fingerprint_enrolled_at,omitempty"`
	Status                EnrollmentStatus `json:"status"`
	LastUsedAt            *time.Time       `json:"last_used_at,omitempty"`
}
