package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
)

type fakeActivityRepo struct {
	activities []attendance.OpenSessionActivity
}

func (r *fakeActivityRepo) Create(context.Context, attendance.Session) (attendance.Session, error) {
	return attendance.Session{}, nil
}

func (r *fakeActivityRepo) GetByID(context.Context, string) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrSessionNotFound
}

func (r *fakeActivityRepo) GetOpenSession(context.Context, string, time.Time) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrNoActiveSession
}

func (r *fakeActivityRepo) Close(context.Context, attendance.Session) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrNoActiveSession
}

func (r *fakeActivityRepo) ListByEmployee(context.Context, string, attendance.SessionFilter) ([]attendance.Session, int64, error) {
	return nil, 0, nil
}

func (r *fakeActivityRepo) ListOpenActivity(context.Context) ([]attendance.OpenSessionActivity, error) {
	return r.activities, nil
}

func activity(sessionID, employeeID string, checkIn time.Time, lastReport *time.Time) attendance.OpenSessionActivity {
	return attendance.OpenSessionActivity{
		SessionID:    sessionID,
		EmployeeID:   employeeID,
		EmployeeCode: "EMP" + employeeID,
		CheckInTime:  checkIn,
		LastReportAt: lastReport,
	}
}

func TestMonitor_Sweep_SilentPastDeadline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-31*time.Minute), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "session-1", alerts[0].SessionID)
	assert.Equal(t, "emp-1", alerts[0].EmployeeID)
	assert.Equal(t, now, alerts[0].MissedAt)
	assert.Equal(t, now.Add(-31*time.Minute), alerts[0].LastActivity)
}

func TestMonitor_Sweep_WithinDeadline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-29*time.Minute), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestMonitor_Sweep_ExactlyAtDeadline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-30*time.Minute), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestMonitor_Sweep_ReportResetsClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lastReport := now.Add(-10 * time.Minute)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-3*time.Hour), &lastReport),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestMonitor_Sweep_MixedSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	recentReport := now.Add(-5 * time.Minute)
	staleReport := now.Add(-45 * time.Minute)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-2*time.Hour), &recentReport),
		activity("session-2", "emp-2", now.Add(-2*time.Hour), &staleReport),
		activity("session-3", "emp-3", now.Add(-40*time.Minute), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	flagged := map[string]bool{}
	for _, alert := range alerts {
		flagged[alert.SessionID] = true
	}
	assert.True(t, flagged["session-2"])
	assert.True(t, flagged["session-3"])
}

func TestMonitor_Sweep_MalformedRowDoesNotAbortSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", time.Time{}, nil),
		activity("session-2", "emp-2", now.Add(-45*time.Minute), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	alerts, err := monitor.Sweep(ctx, now)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "session-2", alerts[0].SessionID)
}

func TestMonitor_Sweep_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{activities: []attendance.OpenSessionActivity{
		activity("session-1", "emp-1", now.Add(-time.Hour), nil),
	}}
	monitor := NewMonitor(repo, 30*time.Minute)

	first, err := monitor.Sweep(ctx, now)
	require.NoError(t, err)
	second, err := monitor.Sweep(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
