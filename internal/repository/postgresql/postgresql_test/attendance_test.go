package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/database"
	"github.com/realsteps/presence-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects once per test binary. Tests are skipped entirely when
// TEST_DATABASE_URL is not set so the suite runs without infrastructure.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres repository tests")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn, 5, 1)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"status_reports", "attendance_sessions", "biometric_enrollments", "employees"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, code string) string {
	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, employee_code, full_name, mobile, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'Test Employee', $2, NOW(), NOW())
		RETURNING id
	`, code, fmt.Sprintf("98%08d", time.Now().UnixNano()%100000000)).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func openTestSession(employeeID string, day time.Time) attendance.Session {
	checkIn := day.Add(9 * time.Hour)
	lat := decimal.NewFromFloat(19.0760)
	lon := decimal.NewFromFloat(72.8777)
	device := "device-1"
	modality := biometric.ModalityFace
	return attendance.Session{
		EmployeeID:       employeeID,
		Date:             day,
		CheckInTime:      &checkIn,
		CheckInLatitude:  &lat,
		CheckInLongitude: &lon,
		CheckInDeviceID:  &device,
		CheckInModality:  &modality,
		Status:           attendance.StatusSuccess,
	}
}

func TestSessionRepository_Create_UniquePerDay(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	repo := postgresql.NewSessionRepository(db)
	employeeID := createTestEmployee(t, ctx, db, "RS00T001")
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, openTestSession(employeeID, day))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, openTestSession(employeeID, day))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// A different day does not collide.
	_, err = repo.Create(ctx, openTestSession(employeeID, day.Add(24*time.Hour)))
	assert.NoError(t, err)
}

func TestSessionRepository_Close_Conditional(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	repo := postgresql.NewSessionRepository(db)
	employeeID := createTestEmployee(t, ctx, db, "RS00T002")
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, openTestSession(employeeID, day))
	require.NoError(t, err)

	open, err := repo.GetOpenSession(ctx, employeeID, day)
	require.NoError(t, err)
	assert.Equal(t, created.ID, open.ID)

	checkOut := day.Add(17 * time.Hour)
	open.CheckOutTime = &checkOut

	closed, err := repo.Close(ctx, open)
	require.NoError(t, err)
	require.NotNil(t, closed.CheckOutTime)

	// Second close loses the conditional update.
	_, err = repo.Close(ctx, open)
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)

	_, err = repo.GetOpenSession(ctx, employeeID, day)
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestSessionRepository_ListOpenActivity(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	sessionRepo := postgresql.NewSessionRepository(db)
	employeeID := createTestEmployee(t, ctx, db, "RS00T003")
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	created, err := sessionRepo.Create(ctx, openTestSession(employeeID, day))
	require.NoError(t, err)

	activity, err := sessionRepo.ListOpenActivity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, created.ID, activity[0].SessionID)
	assert.Equal(t, "RS00T003", activity[0].EmployeeCode)
	assert.Nil(t, activity[0].LastReportAt)

	// A filed report becomes the latest activity.
	_, err = db.Exec(ctx, `
		INSERT INTO status_reports (id, session_id, content, latitude, longitude, distance_from_check_in_meters, created_at)
		VALUES (gen_random_uuid(), $1, 'at site', 19.08, 72.88, 120.5, NOW())
	`, created.ID)
	require.NoError(t, err)

	activity, err = sessionRepo.ListOpenActivity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.NotNil(t, activity[0].LastReportAt)
}
