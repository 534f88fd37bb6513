package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/report"
	"github.com/realsteps/presence-backend-go/internal/pkg/metrics"
	"github.com/realsteps/presence-backend-go/internal/pkg/utils"
	"github.com/realsteps/presence-backend-go/internal/repository/postgresql"
)

type LogServiceImpl struct {
	reportRepo  report.ReportRepository
	sessionRepo attendance.SessionRepository
	tx          postgresql.TxRunner
	metrics     *metrics.Metrics
}

func NewLogService(
	reportRepo report.ReportRepository,
	sessionRepo attendance.SessionRepository,
	tx postgresql.TxRunner,
	m *metrics.Metrics,
) report.LogService {
	return &LogServiceImpl{
		reportRepo:  reportRepo,
		sessionRepo: sessionRepo,
		tx:          tx,
		metrics:     m,
	}
}

// Append implements report.LogService.
func (l *LogServiceImpl) Append(ctx context.Context, req report.AppendReportRequest, now time.Time) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	// The open-session check and the insert share one transaction so a session
	// closing in between cannot leave a report on a closed session.
	var created report.StatusReport
	err := l.tx(ctx, func(txCtx context.Context) error {
		session, err := l.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, attendance.ErrSessionNotFound) {
				return attendance.ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		// Employees can only report against their own sessions. Foreign session
		// ids are indistinguishable from missing ones.
		if session.EmployeeID != req.EmployeeID {
			return attendance.ErrSessionNotFound
		}

		if !session.Open() {
			return report.ErrSessionNotOpen
		}

		var distance float64
		if session.CheckInLatitude != nil && session.CheckInLongitude != nil {
			distance = utils.DistanceMeters(*session.CheckInLatitude, *session.CheckInLongitude, req.Latitude, req.Longitude)
		}

		created, err = l.reportRepo.Append(txCtx, report.StatusReport{
			SessionID:                 req.SessionID,
			Content:                   req.Content,
			Latitude:                  req.Latitude,
			Longitude:                 req.Longitude,
			DistanceFromCheckInMeters: distance,
			CreatedAt:                 now.UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to append report: %w", err)
		}
		return nil
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	l.metrics.IncrementReport()
	return mapReportToResponse(created), nil
}

// ListBySession implements report.LogService.
func (l *LogServiceImpl) ListBySession(ctx context.Context, sessionID string) ([]report.ReportResponse, error) {
	reports, err := l.reportRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, mapReportToResponse(r))
	}
	return responses, nil
}

func mapReportToResponse(r report.StatusReport) report.ReportResponse {
	return report.ReportResponse{
		ID:                        r.ID,
		SessionID:                 r.SessionID,
		Content:                   r.Content,
		Latitude:                  r.Latitude,
		Longitude:                 r.Longitude,
		DistanceFromCheckInMeters: r.DistanceFromCheckInMeters,
		CreatedAt:                 r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
