package compliance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/compliance"
)

type MonitorImpl struct {
	sessionRepo    attendance.SessionRepository
	reportDeadline time.Duration
}

func NewMonitor(sessionRepo attendance.SessionRepository, reportDeadline time.Duration) compliance.Monitor {
	return &MonitorImpl{
		sessionRepo:    sessionRepo,
		reportDeadline: reportDeadline,
	}
}

// Sweep implements compliance.Monitor. It reads one snapshot of open-session
// activity and flags every session silent for strictly longer than the
// deadline. Sessions exactly at the deadline are not flagged.
func (m *MonitorImpl) Sweep(ctx context.Context, now time.Time) ([]compliance.Alert, error) {
	activities, err := m.sessionRepo.ListOpenActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot open sessions: %w", err)
	}

	var alerts []compliance.Alert
	for _, activity := range activities {
		if activity.CheckInTime.IsZero() {
			// A session without a check-in timestamp cannot be judged; skip it
			// and keep sweeping the rest.
			slog.Error("skipping open session with no check-in timestamp",
				"session_id", activity.SessionID,
				"employee_code", activity.EmployeeCode,
			)
			continue
		}

		lastActivity := activity.LastActivity()
		if now.Sub(lastActivity) <= m.reportDeadline {
			continue
		}

		alerts = append(alerts, compliance.Alert{
			EmployeeID:   activity.EmployeeID,
			EmployeeCode: activity.EmployeeCode,
			SessionID:    activity.SessionID,
			CheckInTime:  activity.CheckInTime,
			LastActivity: lastActivity,
			MissedAt:     now,
		})
	}

	return alerts, nil
}
