package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, employeeCode string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == employeeCode {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByMobile(_ context.Context, mobile string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Mobile == mobile {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Mobile == newEmployee.Mobile {
			return employee.Employee{}, employee.ErrMobileExists
		}
		if e.EmployeeCode == newEmployee.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	newEmployee.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.UpdateProfileRequest) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = req.Email
	}
	if req.AadhaarNumber != nil {
		e.AadhaarNumber = req.AadhaarNumber
	}
	if req.BankName != nil {
		e.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		e.AccountNumber = req.AccountNumber
	}
	if req.IFSCCode != nil {
		e.IFSCCode = req.IFSCCode
	}
	r.employees[id] = e
	return nil
}

type fakeRegistry struct {
	enrollments map[string]biometric.EnrollmentResponse
}

func (f *fakeRegistry) Enroll(context.Context, biometric.EnrollRequest, time.Time) (biometric.EnrollmentResponse, error) {
	return biometric.EnrollmentResponse{}, nil
}

func (f *fakeRegistry) IsModalityUsable(context.Context, string, biometric.Modality) (bool, error) {
	return false, nil
}

func (f *fakeRegistry) BoundDevice(context.Context, string) (string, error) {
	return "", biometric.ErrNotEnrolled
}

func (f *fakeRegistry) VerifyScan(context.Context, string, biometric.Modality, []byte, time.Time) error {
	return biometric.ErrNotEnrolled
}

func (f *fakeRegistry) GetEnrollment(_ context.Context, employeeID string) (biometric.EnrollmentResponse, error) {
	enrollment, ok := f.enrollments[employeeID]
	if !ok {
		return biometric.EnrollmentResponse{}, biometric.ErrNotEnrolled
	}
	return enrollment, nil
}

type fakeLedger struct {
	history map[string]attendance.ListSessionsResponse
}

func (f *fakeLedger) CheckIn(context.Context, attendance.CheckInRequest, time.Time) (attendance.SessionResponse, error) {
	return attendance.SessionResponse{}, nil
}

func (f *fakeLedger) CheckOut(context.Context, attendance.CheckOutRequest, time.Time) (attendance.SessionResponse, error) {
	return attendance.SessionResponse{}, nil
}

func (f *fakeLedger) GetMyAttendance(_ context.Context, employeeID string, _ attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	return f.history[employeeID], nil
}

func (f *fakeLedger) GetSession(context.Context, string) (attendance.SessionResponse, error) {
	return attendance.SessionResponse{}, attendance.ErrSessionNotFound
}

func fixtures() (*fakeEmployeeRepo, *fakeRegistry, *fakeLedger, employee.ProfileService) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			EmployeeCode: "RS00A001",
			FullName:     "Asha Kulkarni",
			Mobile:       "9820012345",
		},
	}}
	registry := &fakeRegistry{enrollments: map[string]biometric.EnrollmentResponse{}}
	ledger := &fakeLedger{history: map[string]attendance.ListSessionsResponse{}}
	return repo, registry, ledger, NewProfileService(repo, registry, ledger)
}

func strPtr(s string) *string { return &s }

func createReq() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "RS00B002",
		FullName:     "Ravi Deshmukh",
		Mobile:       "9870054321",
	}
}

func TestProfileService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _, _, svc := fixtures()

	req := createReq()
	req.BankName = strPtr("BOB")

	profile, err := svc.CreateEmployee(ctx, req)

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "RS00B002", profile.EmployeeCode)
	require.NotNil(t, profile.BankFullName)
	assert.Equal(t, "Bank of Baroda", *profile.BankFullName)
	assert.Len(t, repo.employees, 2)
}

func TestProfileService_CreateEmployee_DuplicateMobile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	req := createReq()
	req.Mobile = "9820012345"

	_, err := svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrMobileExists)
}

func TestProfileService_CreateEmployee_DuplicateEmployeeCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	req := createReq()
	req.EmployeeCode = "RS00A001"

	_, err := svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestProfileService_CreateEmployee_UnknownBank(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _, _, svc := fixtures()

	req := createReq()
	req.BankName = strPtr("NOTABANK")

	_, err := svc.CreateEmployee(ctx, req)

	assert.ErrorIs(t, err, employee.ErrInvalidBankCode)
	assert.Len(t, repo.employees, 1)
}

func TestProfileService_CreateEmployee_InvalidMobile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	req := createReq()
	req.Mobile = "12345"

	_, err := svc.CreateEmployee(ctx, req)
	assert.Error(t, err)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	profile, err := svc.GetProfile(ctx, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "RS00A001", profile.EmployeeCode)
	assert.Equal(t, "Asha Kulkarni", profile.FullName)
	assert.Nil(t, profile.BankFullName)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	_, err := svc.GetProfile(ctx, "nobody")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestProfileService_UpdateProfile_BankDetails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	profile, err := svc.UpdateProfile(ctx, "emp-1", employee.UpdateProfileRequest{
		BankName:      strPtr("SBI"),
		AccountNumber: strPtr("30112233445"),
		IFSCCode:      strPtr("SBIN0001234"),
	})

	require.NoError(t, err)
	require.NotNil(t, profile.BankName)
	assert.Equal(t, "SBI", *profile.BankName)
	require.NotNil(t, profile.BankFullName)
	assert.Equal(t, "State Bank of India", *profile.BankFullName)
}

func TestProfileService_UpdateProfile_UnknownBank(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	_, err := svc.UpdateProfile(ctx, "emp-1", employee.UpdateProfileRequest{
		BankName: strPtr("NOTABANK"),
	})
	assert.ErrorIs(t, err, employee.ErrInvalidBankCode)
}

func TestProfileService_UpdateProfile_InvalidAadhaar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	_, err := svc.UpdateProfile(ctx, "emp-1", employee.UpdateProfileRequest{
		AadhaarNumber: strPtr("12345"),
	})
	assert.Error(t, err)
}

func TestProfileService_GetFullData_WithEnrollmentAndHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, registry, ledger, svc := fixtures()

	registry.enrollments["emp-1"] = biometric.EnrollmentResponse{
		EmployeeID:   "emp-1",
		DeviceID:     "device-1",
		FaceEnrolled: true,
		Status:       biometric.StatusSuccess,
	}
	ledger.history["emp-1"] = attendance.ListSessionsResponse{
		TotalCount: 2,
		Sessions:   []attendance.SessionResponse{{ID: "session-1"}, {ID: "session-2"}},
	}

	full, err := svc.GetFullData(ctx, "RS00A001")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", full.Profile.ID)
	require.NotNil(t, full.Enrollment)
	assert.True(t, full.Enrollment.FaceEnrolled)
	assert.Equal(t, int64(2), full.Attendance.TotalCount)
}

func TestProfileService_GetFullData_NotEnrolled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	full, err := svc.GetFullData(ctx, "RS00A001")

	require.NoError(t, err)
	assert.Nil(t, full.Enrollment)
}

func TestProfileService_GetFullData_UnknownCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, _, svc := fixtures()

	_, err := svc.GetFullData(ctx, "ZZ99Z999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
