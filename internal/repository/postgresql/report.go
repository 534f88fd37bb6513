package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/realsteps/presence-backend-go/internal/domain/report"
	"github.com/realsteps/presence-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// Append implements report.ReportRepository. Reports are append-only; there is
// no update or delete path.
func (r *reportRepository) Append(ctx context.Context, statusReport report.StatusReport) (report.StatusReport, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return report.StatusReport{}, fmt.Errorf("failed to generate report id: %w", err)
	}
	statusReport.ID = id.String()

	query := `
		INSERT INTO status_reports (
			id, session_id, content, latitude, longitude,
			distance_from_check_in_meters, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		statusReport.ID,
		statusReport.SessionID,
		statusReport.Content,
		statusReport.Latitude,
		statusReport.Longitude,
		statusReport.DistanceFromCheckInMeters,
		statusReport.CreatedAt,
	).Scan(&statusReport.CreatedAt)

	if err != nil {
		return report.StatusReport{}, fmt.Errorf("failed to append status report: %w", err)
	}

	return statusReport, nil
}

// ListBySession implements report.ReportRepository.
func (r *reportRepository) ListBySession(ctx context.Context, sessionID string) ([]report.StatusReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, content, latitude, longitude,
		       distance_from_check_in_meters, created_at
		FROM status_reports
		WHERE session_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status reports: %w", err)
	}
	defer rows.Close()

	var reports []report.StatusReport
	for rows.Next() {
		var sr report.StatusReport
		if err := rows.Scan(
			&sr.ID, &sr.SessionID, &sr.Content, &sr.Latitude, &sr.Longitude,
			&sr.DistanceFromCheckInMeters, &sr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan status report: %w", err)
		}
		reports = append(reports, sr)
	}

	return reports, nil
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
