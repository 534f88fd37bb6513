package compliance

import "time"

// Alert flags an employee who is checked in but has been silent past the
// reporting deadline. Alerts are transient: they are handed to a notifier,
// never persisted. Re-running the sweep before a new report is filed re-emits
// the same alert (at-least-once; deduplication is the notifier's concern).
type Alert struct {
	EmployeeID   string
	EmployeeCode string
	SessionID    string
	CheckInTime  time.Time
	LastActivity time.Time
	MissedAt     time.Time
}
