package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string             `json:"-"`
	Modality   biometric.Modality `json:"modality"`
	DeviceID   string             `json:"device_id"`
	Latitude   decimal.Decimal    `json:"latitude"`
	Longitude  decimal.Decimal    `json:"longitude"`

	// ProbeSample is the live scan capture, base64-encoded. When present it is
	// verified against the stored reference before the session is created.
	ProbeSample []byte `json:"probe_sample,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validateScanRequest(r.Modality, r.DeviceID, r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	EmployeeID string             `json:"-"`
	Modality   biometric.Modality `json:"modality"`
	DeviceID   string             `json:"device_id"`
	Latitude   decimal.Decimal    `json:"latitude"`
	Longitude  decimal.Decimal    `json:"longitude"`

	ProbeSample []byte `json:"probe_sample,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validateScanRequest(r.Modality, r.DeviceID, r.Latitude, r.Longitude)
}

// validateScanRequest covers the shared transport-boundary checks for both
// legs. Coordinate plausibility is validated here, never in the ledger itself,
// which stores whatever it is handed verbatim.
func validateScanRequest(modality biometric.Modality, deviceID string, lat, lon decimal.Decimal) error {
	var errs validator.ValidationErrors

	if !modality.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "modality",
			Message: "modality must be face or fingerprint",
		})
	}

	if validator.IsEmpty(deviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if lat.LessThan(decimal.NewFromInt(-90)) || lat.GreaterThan(decimal.NewFromInt(90)) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lon.LessThan(decimal.NewFromInt(-180)) || lon.GreaterThan(decimal.NewFromInt(180)) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionFilter struct {
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{string(StatusPending), string(StatusSuccess), string(StatusFailed)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be pending, success or failed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	CheckInTime      *string          `json:"check_in_time,omitempty"`
	CheckInLatitude  *decimal.Decimal `json:"check_in_latitude,omitempty"`
	CheckInLongitude *decimal.Decimal `json:"check_in_longitude,omitempty"`
	CheckInModality  *string          `json:"check_in_modality,omitempty"`

	CheckOutTime      *string          `json:"check_out_time,omitempty"`
	CheckOutLatitude  *decimal.Decimal `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *decimal.Decimal `json:"check_out_longitude,omitempty"`
	CheckOutModality  *string          `json:"check_out_modality,omitempty"`

	Status string `json:"status"`
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Sessions   []SessionResponse `json:"sessions"`
}
