package biometric

import "errors"

var (
	ErrNotEnrolled         = errors.New("employee has no biometric enrollment")
	ErrModalityNotEnrolled = errors.New("scan modality is not enrolled")
	ErrNoBiometricFeatures = errors.New("no biometric features detected in sample")
	ErrBiometricMismatch   = errors.New("biometric sample does not match stored reference")
	ErrMatcherUnavailable  = errors.New("biometric matcher unavailable")
	ErrInvalidModality     = errors.New("scan modality must be face or fingerprint")
)
