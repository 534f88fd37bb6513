package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions. The backing
// store must enforce the (employee_id, date) unique key and close sessions
// with a conditional update so concurrent duplicates cannot both succeed.
type SessionRepository interface {
	// Create inserts a new session. A unique-key violation on (employee, date)
	// is returned as ErrAlreadyCheckedIn.
	Create(ctx context.Context, session Session) (Session, error)

	// GetByID retrieves a session by id.
	GetByID(ctx context.Context, id string) (Session, error)

	// GetOpenSession retrieves the employee's session for the given date with
	// check-out still unset; ErrNoActiveSession when there is none.
	GetOpenSession(ctx context.Context, employeeID string, date time.Time) (Session, error)

	// Close sets the check-out fields, predicated on check_out_time still being
	// NULL. A lost race surfaces as ErrNoActiveSession.
	Close(ctx context.Context, session Session) (Session, error)

	// ListByEmployee retrieves the employee's sessions with filters and pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter SessionFilter) ([]Session, int64, error)

	// ListOpenActivity snapshots every open session joined with its latest
	// report timestamp, for the compliance sweep.
	ListOpenActivity(ctx context.Context) ([]OpenSessionActivity, error)
}
