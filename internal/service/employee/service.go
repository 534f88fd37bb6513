package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/realsteps/presence-backend-go/internal/domain/attendance"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/domain/employee"
)

// fullDataHistoryLimit bounds the attendance slice embedded in the full-data
// payload; older sessions are reachable through the paginated listing.
const fullDataHistoryLimit = 30

type ProfileServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	registry     biometric.RegistryService
	ledger       attendance.LedgerService
}

func NewProfileService(
	employeeRepo employee.EmployeeRepository,
	registry biometric.RegistryService,
	ledger attendance.LedgerService,
) employee.ProfileService {
	return &ProfileServiceImpl{
		employeeRepo: employeeRepo,
		registry:     registry,
		ledger:       ledger,
	}
}

// CreateEmployee implements employee.ProfileService.
func (s *ProfileServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}
	if err := validBankCode(req.BankName); err != nil {
		return employee.ProfileResponse{}, err
	}

	// Friendlier duplicate answer than the unique index gives; the index still
	// backs this up under concurrent registration.
	_, err := s.employeeRepo.GetByMobile(ctx, req.Mobile)
	switch {
	case err == nil:
		return employee.ProfileResponse{}, employee.ErrMobileExists
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// Mobile is free.
	default:
		return employee.ProfileResponse{}, fmt.Errorf("failed to check mobile: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Mobile:        req.Mobile,
		Email:         req.Email,
		AadhaarNumber: req.AadhaarNumber,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		if errors.Is(err, employee.ErrMobileExists) || errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.ProfileResponse{}, err
		}
		return employee.ProfileResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToProfile(created), nil
}

// GetProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, employeeID string) (employee.ProfileResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ProfileResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.ProfileResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToProfile(e), nil
}

// UpdateProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, employeeID string, req employee.UpdateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}
	if err := validBankCode(req.BankName); err != nil {
		return employee.ProfileResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ProfileResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.ProfileResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.Update(ctx, employeeID, req); err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return mapEmployeeToProfile(updated), nil
}

// GetFullData implements employee.ProfileService.
func (s *ProfileServiceImpl) GetFullData(ctx context.Context, employeeCode string) (employee.FullDataResponse, error) {
	e, err := s.employeeRepo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.FullDataResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.FullDataResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	full := employee.FullDataResponse{Profile: mapEmployeeToProfile(e)}

	enrollment, err := s.registry.GetEnrollment(ctx, e.ID)
	switch {
	case err == nil:
		full.Enrollment = &enrollment
	case errors.Is(err, biometric.ErrNotEnrolled):
		// Not enrolled yet; the field stays empty.
	default:
		return employee.FullDataResponse{}, fmt.Errorf("failed to get enrollment: %w", err)
	}

	history, err := s.ledger.GetMyAttendance(ctx, e.ID, attendance.SessionFilter{
		Page:  1,
		Limit: fullDataHistoryLimit,
	})
	if err != nil {
		return employee.FullDataResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	full.Attendance = history

	return full, nil
}

// validBankCode accepts an absent bank name; a present one must be a known
// nationalized-bank code.
func validBankCode(bankName *string) error {
	if bankName == nil {
		return nil
	}
	if _, ok := employee.NationalizedBanks[*bankName]; !ok {
		return employee.ErrInvalidBankCode
	}
	return nil
}

func mapEmployeeToProfile(e employee.Employee) employee.ProfileResponse {
	profile := employee.ProfileResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FullName:      e.FullName,
		Mobile:        e.Mobile,
		Email:         e.Email,
		AadhaarNumber: e.AadhaarNumber,
		BankName:      e.BankName,
		AccountNumber: e.AccountNumber,
		IFSCCode:      e.IFSCCode,
	}

	if e.BankName != nil {
		if fullName, ok := employee.NationalizedBanks[*e.BankName]; ok {
			profile.BankFullName = &fullName
		}
	}

	return profile
}
