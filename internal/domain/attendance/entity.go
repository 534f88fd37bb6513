package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
)

// SessionStatus tracks the biometric gate outcome for a session. Pending is
// the window before the gates have run, success means both the modality and
// device gates passed, failed is reserved for matcher-reported failures.
type SessionStatus string

const (
	StatusPending SessionStatus = "pending"
	StatusSuccess SessionStatus = "success"
	StatusFailed  SessionStatus = "failed"
)

// Session is one employee's single-day attendance record. At most one session
// exists per (employee, date); check-out fields are set once, only after
// check-in, and a closed session is immutable.
type Session struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckInTime      *time.Time
	CheckInLatitude  *decimal.Decimal
	CheckInLongitude *decimal.Decimal
	CheckInDeviceID  *string
	CheckInModality  *biometric.Modality

	CheckOutTime      *time.Time
	CheckOutLatitude  *decimal.Decimal
	CheckOutLongitude *decimal.Decimal
	CheckOutDeviceID  *string
	CheckOutModality  *biometric.Modality

	Status    SessionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the session is checked in but not yet checked out.
func (s Session) Open() bool {
	return s.CheckInTime != nil && s.CheckOutTime == nil
}

// OpenSessionActivity is the compliance monitor's read model: an open session
// joined with the timestamp of its latest status report, if any.
type OpenSessionActivity struct {
	SessionID    string
	EmployeeID   string
	EmployeeCode string
	CheckInTime  time.Time
	LastReportAt *time.Time
}

// LastActivity returns the latest report time, or the check-in time when no
// report has been filed yet.
func (a OpenSessionActivity) LastActivity() time.Time {
	if a.LastReportAt != nil {
		return *a.LastReportAt
	}
	return a.CheckInTime
}
