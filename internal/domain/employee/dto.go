package employee

import (
	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	FullName      *string `json:"full_name"`
	Email         *string `json:"email"`
	AadhaarNumber *string `json:"aadhaar_number"`
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	IFSCCode      *string `json:"ifsc_code"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot be blank",
		})
	}

	if r.AadhaarNumber != nil && !validator.IsValidAadhaar(*r.AadhaarNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "aadhaar_number",
			Message: "aadhaar_number must be exactly 12 digits",
		})
	}

	if r.IFSCCode != nil && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "ifsc_code format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateEmployeeRequest registers a new employee in the directory. Bank code
// validity is checked against NationalizedBanks by the service, not here.
type CreateEmployeeRequest struct {
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Mobile        string  `json:"mobile"`
	Email         *string `json:"email"`
	AadhaarNumber *string `json:"aadhaar_number"`
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	IFSCCode      *string `json:"ifsc_code"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 8 uppercase letters or digits",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a 10-digit Indian mobile number",
		})
	}

	if r.AadhaarNumber != nil && !validator.IsValidAadhaar(*r.AadhaarNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "aadhaar_number",
			Message: "aadhaar_number must be exactly 12 digits",
		})
	}

	if r.IFSCCode != nil && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "ifsc_code format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FullDataResponse bundles everything known about an employee in one payload:
// profile, biometric enrollment state, and recent attendance.
type FullDataResponse struct {
	Profile    ProfileResponse                 `json:"profile"`
	Enrollment *biometric.EnrollmentResponse   `json:"enrollment,omitempty"`
	Attendance attendance.ListSessionsResponse `json:"attendance"`
}

type ProfileResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Mobile        string  `json:"mobile"`
	Email         *string `json:"email,omitempty"`
	AadhaarNumber *string `json:"aadhaar_number,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	BankFullName  *string `json:"bank_full_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	IFSCCode      *string `json:"ifsc_code,omitempty"`
}
