package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

const sessionColumns = `
	id, employee_id, date,
	check_in_time, check_in_latitude, check_in_longitude, check_in_device_id, check_in_modality,
	check_out_time, check_out_latitude, check_out_longitude, check_out_device_id, check_out_modality,
	status, created_at, updated_at
`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date,
		&s.CheckInTime, &s.CheckInLatitude, &s.CheckInLongitude, &s.CheckInDeviceID, &s.CheckInModality,
		&s.CheckOutTime, &s.CheckOutLatitude, &s.CheckOutLongitude, &s.CheckOutDeviceID, &s.CheckOutModality,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements attendance.SessionRepository. The attendance_sessions table
// carries a unique constraint on (employee_id, date); a violation means a
// concurrent check-in won the race and surfaces as ErrAlreadyCheckedIn.
func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to generate session id: %w", err)
	}
	session.ID = id.String()

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, date,
			check_in_time, check_in_latitude, check_in_longitude,
			check_in_device_id, check_in_modality, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		session.ID,
		session.EmployeeID,
		session.Date,
		session.CheckInTime,
		session.CheckInLatitude,
		session.CheckInLongitude,
		session.CheckInDeviceID,
		session.CheckInModality,
		session.Status,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Session{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// GetByID implements attendance.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE id = $1`

	session, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, fmt.Errorf("failed to get session by ID: %w", err)
	}

	return session, nil
}

// GetOpenSession implements attendance.SessionRepository.
func (r *sessionRepository) GetOpenSession(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND date = $2
		  AND check_in_time IS NOT NULL
		  AND check_out_time IS NULL
	`

	session, err := scanSession(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoActiveSession
		}
		return attendance.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return session, nil
}

// Close implements attendance.SessionRepository. The update is predicated on
// check_out_time still being NULL so two concurrent check-outs cannot both
// succeed; the loser sees zero rows and gets ErrNoActiveSession.
func (r *sessionRepository) Close(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions SET
			check_out_time      = $1,
			check_out_latitude  = $2,
			check_out_longitude = $3,
			check_out_device_id = $4,
			check_out_modality  = $5,
			status              = $6,
			updated_at          = NOW()
		WHERE id = $7
		  AND check_in_time IS NOT NULL
		  AND check_out_time IS NULL
		RETURNING ` + sessionColumns + `
	`

	closed, err := scanSession(q.QueryRow(ctx, query,
		session.CheckOutTime,
		session.CheckOutLatitude,
		session.CheckOutLongitude,
		session.CheckOutDeviceID,
		session.CheckOutModality,
		session.Status,
		session.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoActiveSession
		}
		return attendance.Session{}, fmt.Errorf("failed to close session: %w", err)
	}

	return closed, nil
}

// ListByEmployee implements attendance.SessionRepository.
func (r *sessionRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_sessions WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance_sessions
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, sessionColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date,
			&s.CheckInTime, &s.CheckInLatitude, &s.CheckInLongitude, &s.CheckInDeviceID, &s.CheckInModality,
			&s.CheckOutTime, &s.CheckOutLatitude, &s.CheckOutLongitude, &s.CheckOutDeviceID, &s.CheckOutModality,
			&s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, nil
}

// ListOpenActivity implements attendance.SessionRepository. The snapshot joins
// each open session with the timestamp of its latest status report in a single
// read so the sweep tolerates sessions closing mid-scan.
func (r *sessionRepository) ListOpenActivity(ctx context.Context) ([]attendance.OpenSessionActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, e.employee_code, s.check_in_time,
		       (SELECT MAX(r.created_at) FROM status_reports r WHERE r.session_id = s.id) AS last_report_at
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.check_in_time IS NOT NULL
		  AND s.check_out_time IS NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var activity []attendance.OpenSessionActivity
	for rows.Next() {
		var a attendance.OpenSessionActivity
		if err := rows.Scan(&a.SessionID, &a.EmployeeID, &a.EmployeeCode, &a.CheckInTime, &a.LastReportAt); err != nil {
			// One malformed row must not cost every other session its alert.
			slog.Error("skipping unreadable open-session row", "error", err)
			continue
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read open sessions: %w", err)
	}

	return activity, nil
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}
