package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/realsteps/presence-backend-go/internal/domain/compliance"
	"github.com/realsteps/presence-backend-go/internal/pkg/metrics"
)

// alertDispatchParallelism bounds concurrent notifier calls per sweep so a
// slow SMTP server cannot pile up goroutines.
const alertDispatchParallelism = 4

// ComplianceJobs runs the missed-report sweep on a schedule and hands the
// resulting alerts to the notifier.
type ComplianceJobs struct {
	monitor       compliance.Monitor
	notifier      compliance.Notifier
	metrics       *metrics.Metrics
	sweepInterval time.Duration
}

func NewComplianceJobs(
	monitor compliance.Monitor,
	notifier compliance.Notifier,
	m *metrics.Metrics,
	sweepInterval time.Duration,
) *ComplianceJobs {
	return &ComplianceJobs{
		monitor:       monitor,
		notifier:      notifier,
		metrics:       m,
		sweepInterval: sweepInterval,
	}
}

func (j *ComplianceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missed_report_sweep", j.sweepInterval, j.RunMissedReportSweep)
}

// RunMissedReportSweep executes one sweep and dispatches every alert. A failed
// notification is logged and skipped; the sweep re-emits the alert on its next
// run as long as the employee stays silent.
func (j *ComplianceJobs) RunMissedReportSweep(ctx context.Context) error {
	now := time.Now().UTC()

	alerts, err := j.monitor.Sweep(ctx, now)
	if err != nil {
		return fmt.Errorf("missed-report sweep failed: %w", err)
	}

	if len(alerts) == 0 {
		return nil
	}

	slog.Info("Missed-report sweep flagged silent sessions", "count", len(alerts))
	j.metrics.AddComplianceAlerts(len(alerts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(alertDispatchParallelism)

	for _, alert := range alerts {
		alert := alert
		g.Go(func() error {
			if err := j.notifier.Notify(gctx, alert); err != nil {
				slog.Error("Failed to deliver missed-report alert",
					"employee_code", alert.EmployeeCode,
					"session_id", alert.SessionID,
					"error", err,
				)
			}
			return nil
		})
	}

	// Errors are swallowed per alert above; Wait only synchronizes.
	return g.Wait()
}
