package report

import (
	"context"
	"time"
)

// LogService appends liveness reports to open attendance sessions. Each append
// advances the last-activity clock read by the compliance sweep.
type LogService interface {
	// Append files a report against the session; fails with ErrSessionNotOpen
	// unless the session has check-in set and check-out unset.
	Append(ctx context.Context, req AppendReportRequest, now time.Time) (ReportResponse, error)

	// ListBySession lists a session's reports, newest first.
	ListBySession(ctx context.Context, sessionID string) ([]ReportResponse, error)
}
