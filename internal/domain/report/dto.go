package report

import (
	"github.com/shopspring/decimal"

	"github.com/realsteps/presence-backend-go/internal/pkg/validator"
)

type AppendReportRequest struct {
	EmployeeID string          `json:"-"`
	SessionID  string          `json:"session_id"`
	Content    string          `json:"content"`
	Latitude   decimal.Decimal `json:"latitude"`
	Longitude  decimal.Decimal `json:"longitude"`
}

func (r *AppendReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if r.Latitude.LessThan(decimal.NewFromInt(-90)) || r.Latitude.GreaterThan(decimal.NewFromInt(90)) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude.LessThan(decimal.NewFromInt(-180)) || r.Longitude.GreaterThan(decimal.NewFromInt(180)) {
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

type ReportResponse struct {
	ID                        string          `json:"id"`
	SessionID                 string          `json:"session_id"`
	Content                   string          `json:"content"`
	Latitude                  decimal.Decimal `json:"latitude"`
	Longitude                 decimal.Decimal `json:"longitude"`
	DistanceFromCheckInMeters float64         `json:"distance_from_check_in_meters"`
	CreatedAt                 string          `json:"created_at"`
}
