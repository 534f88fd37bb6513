package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/metrics"
)

type LedgerServiceImpl struct {
	sessionRepo attendance.SessionRepository
	registry    biometric.RegistryService
	metrics     *metrics.Metrics
}

func NewLedgerService(
	sessionRepo attendance.SessionRepository,
	registry biometric.RegistryService,
	m *metrics.Metrics,
) attendance.LedgerService {
	return &LedgerServiceImpl{
		sessionRepo: sessionRepo,
		registry:    registry,
		metrics:     m,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// sessionDate truncates now to its calendar day. Days are reckoned in UTC;
// localizing them is the transport boundary's concern.
func sessionDate(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.LedgerService.
func (l *LedgerServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest, now time.Time) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	if err := l.gate(ctx, req.EmployeeID, req.Modality, req.DeviceID, req.ProbeSample, now); err != nil {
		l.metrics.IncrementCheckIn(string(req.Modality), gateOutcome(err))
		return attendance.SessionResponse{}, err
	}

	nowUTC := now.UTC()
	session := attendance.Session{
		EmployeeID:       req.EmployeeID,
		Date:             sessionDate(now),
		CheckInTime:      &nowUTC,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		CheckInDeviceID:  &req.DeviceID,
		CheckInModality:  &req.Modality,
		Status:           attendance.StatusSuccess,
	}

	created, err := l.sessionRepo.Create(ctx, session)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			l.metrics.IncrementCheckIn(string(req.Modality), "already_checked_in")
			return attendance.SessionResponse{}, attendance.ErrAlreadyCheckedIn
		}
		l.metrics.IncrementCheckIn(string(req.Modality), "error")
		return attendance.SessionResponse{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	l.metrics.IncrementCheckIn(string(req.Modality), "success")
	return mapSessionToResponse(created), nil
}

// CheckOut implements attendance.LedgerService.
func (l *LedgerServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest, now time.Time) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	session, err := l.sessionRepo.GetOpenSession(ctx, req.EmployeeID, sessionDate(now))
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveSession) {
			l.metrics.IncrementCheckOut(string(req.Modality), "no_active_session")
			return attendance.SessionResponse{}, attendance.ErrNoActiveSession
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if err := l.gate(ctx, req.EmployeeID, req.Modality, req.DeviceID, req.ProbeSample, now); err != nil {
		l.metrics.IncrementCheckOut(string(req.Modality), gateOutcome(err))
		return attendance.SessionResponse{}, err
	}

	nowUTC := now.UTC()
	session.CheckOutTime = &nowUTC
	session.CheckOutLatitude = &req.Latitude
	session.CheckOutLongitude = &req.Longitude
	session.CheckOutDeviceID = &req.DeviceID
	session.CheckOutModality = &req.Modality
	session.Status = attendance.StatusSuccess

	closed, err := l.sessionRepo.Close(ctx, session)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveSession) {
			// A concurrent check-out won the race; the session is already closed.
			l.metrics.IncrementCheckOut(string(req.Modality), "no_active_session")
			return attendance.SessionResponse{}, attendance.ErrNoActiveSession
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	l.metrics.IncrementCheckOut(string(req.Modality), "success")
	return mapSessionToResponse(closed), nil
}

// gate runs the biometric and device checks shared by both legs: the modality
// must be enrolled, the device must match the enrolled device, and a probe
// sample, when supplied, must verify against the stored reference.
func (l *LedgerServiceImpl) gate(ctx context.Context, employeeID string, modality biometric.Modality, deviceID string, probe []byte, now time.Time) error {
	usable, err := l.registry.IsModalityUsable(ctx, employeeID, modality)
	if err != nil {
		return fmt.Errorf("failed to check modality: %w", err)
	}
	if !usable {
		return biometric.ErrModalityNotEnrolled
	}

	bound, err := l.registry.BoundDevice(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to resolve bound device: %w", err)
	}
	if bound != deviceID {
		return attendance.ErrDeviceMismatch
	}

	if len(probe) > 0 {
		if err := l.registry.VerifyScan(ctx, employeeID, modality, probe, now); err != nil {
			return err
		}
	}

	return nil
}

func gateOutcome(err error) string {
	switch {
	case errors.Is(err, biometric.ErrModalityNotEnrolled):
		return "modality_not_enrolled"
	case errors.Is(err, attendance.ErrDeviceMismatch):
		return "device_mismatch"
	case errors.Is(err, biometric.ErrNoBiometricFeatures),
		errors.Is(err, biometric.ErrBiometricMismatch),
		errors.Is(err, biometric.ErrMatcherUnavailable):
		return "matcher_failed"
	default:
		return "error"
	}
}

// GetMyAttendance implements attendance.LedgerService.
func (l *LedgerServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	sessions, total, err := l.sessionRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, mapSessionToResponse(session))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Sessions:   responses,
	}, nil
}

// GetSession implements attendance.LedgerService.
func (l *LedgerServiceImpl) GetSession(ctx context.Context, id string) (attendance.SessionResponse, error) {
	session, err := l.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.SessionResponse{}, attendance.ErrSessionNotFound
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to get session: %w", err)
	}

	return mapSessionToResponse(session), nil
}

func mapSessionToResponse(s attendance.Session) attendance.SessionResponse {
	var checkInModality, checkOutModality *string
	if s.CheckInModality != nil {
		v := string(*s.CheckInModality)
		checkInModality = &v
	}
	if s.CheckOutModality != nil {
		v := string(*s.CheckOutModality)
		checkOutModality = &v
	}

	return attendance.SessionResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		Date:              s.Date.Format("2006-01-02"),
		CheckInTime:       timePtrToString(s.CheckInTime),
		CheckInLatitude:   s.CheckInLatitude,
		CheckInLongitude:  s.CheckInLongitude,
		CheckInModality:   checkInModality,
		CheckOutTime:      timePtrToString(s.CheckOutTime),
		CheckOutLatitude:  s.CheckOutLatitude,
		CheckOutLongitude: s.CheckOutLongitude,
		CheckOutModality:  checkOutModality,
		Status:            string(s.Status),
	}
}
