package attendance

import (
	"context"
	"time"
)

// LedgerService owns the per-employee-per-day check-in/check-out state machine.
// The current time is injected into every transition so threshold logic stays
// deterministic under test.
type LedgerService interface {
	// CheckIn opens the employee's session for now's calendar day. Fails when
	// the modality is not enrolled, the device does not match the enrolled
	// device, or a session already exists for the day.
	CheckIn(ctx context.Context, req CheckInRequest, now time.Time) (SessionResponse, error)

	// CheckOut closes the open session for now's calendar day. Repeating the
	// call after a successful close fails with ErrNoActiveSession.
	CheckOut(ctx context.Context, req CheckOutRequest, now time.Time) (SessionResponse, error)

	// GetMyAttendance lists the employee's sessions, newest first.
	GetMyAttendance(ctx context.Context, employeeID string, filter SessionFilter) (ListSessionsResponse, error)

	// GetSession retrieves a single session by id.
	GetSession(ctx context.Context, id string) (SessionResponse, error)
}
