package report

import "context"

type ReportRepository interface {
	// Append inserts a new status report; reports are append-only.
	Append(ctx context.Context, statusReport StatusReport) (StatusReport, error)

	// ListBySession lists a session's reports, newest first.
	ListBySession(ctx context.Context, sessionID string) ([]StatusReport, error)
}
