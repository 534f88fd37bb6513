package biometric

import (
	"time"
)

// Modality is the biometric channel used for a scan.
type Modality string

const (
	ModalityFace        Modality = "face"
	ModalityFingerprint Modality = "fingerprint"
)

// AllModalities returns the scan modalities an employee can enroll.
func AllModalities() []Modality {
	return []Modality{ModalityFace, ModalityFingerprint}
}

func (m Modality) Valid() bool {
	return m == ModalityFace || m == ModalityFingerprint
}

// EnrollmentStatus is the overall state of an employee's biometric enrollment.
type EnrollmentStatus string

const (
	StatusPending EnrollmentStatus = "pending"
	StatusSuccess EnrollmentStatus = "success"
	StatusFailed  EnrollmentStatus = "failed"
)

// Enrollment is the one-per-employee biometric record. A modality flag is only
// set true after a successful enrollment event for that modality, and attendance
// scans require the flag to be true and the device id to match.
type Enrollment struct {
	ID                    string
	EmployeeID            string
	DeviceID              string
	PublicKey             string
	FaceEnrolled          bool
	FaceEnrolledAt        *time.Time
	FingerprintEnrolled   bool
	FingerprintEnrolledAt *time.Time
	FaceReference         []byte
	FingerprintReference  []byte
	Status                EnrollmentStatus
	LastUsedAt            *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ModalityEnrolled reports whether the given modality has been enrolled.
func (e Enrollment) ModalityEnrolled(m Modality) bool {
	switch m {
	case ModalityFace:
		return e.FaceEnrolled
	case ModalityFingerprint:
		return e.FingerprintEnrolled
	}
	return false
}

// Reference returns the stored reference sample for the given modality.
func (e Enrollment) Reference(m Modality) []byte {
	switch m {
	case ModalityFace:
		return e.FaceReference
	case ModalityFingerprint:
		return e.FingerprintReference
	}
	return nil
}
