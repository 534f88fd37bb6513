package biometric

import "context"

// Matcher is the opaque comparison capability. Implementations compare a probe
// sample against a stored reference and report whether they belong to the same
// person. The comparison algorithm itself is outside this module; callers only
// rely on the boolean contract and the sentinel errors ErrNoBiometricFeatures
// and ErrMatcherUnavailable.
type Matcher interface {
	Compare(ctx context.Context, probe []byte, reference []byte) (bool, error)
}
