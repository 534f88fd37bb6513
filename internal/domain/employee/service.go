package employee

import "context"

// ProfileService exposes the employee identity anchor: profile reads and
// updates plus the aggregated full-data view.
type ProfileService interface {
	// CreateEmployee registers a new employee in the directory. Employee code
	// and mobile number must both be unique.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (ProfileResponse, error)

	// GetProfile returns the employee's own profile.
	GetProfile(ctx context.Context, employeeID string) (ProfileResponse, error)

	// UpdateProfile applies a partial profile update (bank details, Aadhaar,
	// contact fields) and returns the updated profile.
	UpdateProfile(ctx context.Context, employeeID string, req UpdateProfileRequest) (ProfileResponse, error)

	// GetFullData looks an employee up by code and returns profile, biometric
	// enrollment, and recent attendance in one response.
	GetFullData(ctx context.Context, employeeCode string) (FullDataResponse, error)
}
