package department

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetAllWithCounts() ([]*departmentDatamodel.WithEmployeeCount, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	GetByName(name string) (*departmentDatamodel.Department, error)
	GetEmployees(departmentID int64) ([]*employeeDatamodel.Employee, error)
	CountEmployees(departmentID int64) (int64, error)
	Create(d *departmentDatamodel.Department) error
	Update(d *departmentDatamodel.Department) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]DepartmentResponse, error) {
	rows, err := s.repo.GetAllWithCounts()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}

	responses := make([]DepartmentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, DepartmentResponse{
			ID:            row.ID,
			Name:          row.Name,
			Description:   row.Description,
			EmployeeCount: row.EmployeeCount,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}

	return responses, nil
}

func (s *Service) GetByID(id int64) (*DepartmentDetailResponse, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDepartmentNotFound
		}
		s.logger.Error("failed to get department", "department_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get department", err)
	}

	members, err := s.repo.GetEmployees(id)
	if err != nil {
		s.logger.Error("failed to load department employees", "department_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get department", err)
	}

	detail := &DepartmentDetailResponse{
		Department: *FromDataModel(record),
		Employees:  make([]EmployeeSummary, 0, len(members)),
	}
	for _, m := range members {
		detail.Employees = append(detail.Employees, EmployeeSummary{
			ID:         m.ID,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			Email:      m.Email,
			EmployeeNo: m.EmployeeNo,
			Position:   m.Position,
			HireDate:   m.HireDate,
		})
	}

	return detail, nil
}

// Create relies on the unique index on departments.name as the conflict
// source of truth; the name pre-check is only a fast path.
func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if existing, err := s.repo.GetByName(dto.Name); err == nil && existing != nil {
		return nil, internal.ErrDepartmentExists
	}

	record := ToDataModel(NewDepartment(dto.Name, dto.Description))
	if err := s.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrDepartmentExists
		}
		s.logger.Error("failed to create department", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", record.ID, "name", record.Name)
	return FromDataModel(record), nil
}

func (s *Service) Update(id int64, dto UpdateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDepartmentNotFound
		}
		return nil, internal.NewInternalError("failed to get department", err)
	}

	if dto.Name != nil && *dto.Name != record.Name {
		if existing, err := s.repo.GetByName(*dto.Name); err == nil && existing != nil && existing.ID != id {
			return nil, internal.ErrDepartmentExists
		}
		record.Name = *dto.Name
	}
	if dto.Description != nil {
		record.Description = *dto.Description
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrDepartmentExists
		}
		s.logger.Error("failed to update department", "department_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update department", err)
	}

	return FromDataModel(record), nil
}

// Delete refuses to remove a department that still has employees.
func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrDepartmentNotFound
		}
		return internal.NewInternalError("failed to get department", err)
	}

	count, err := s.repo.CountEmployees(id)
	if err != nil {
		s.logger.Error("failed to count department employees", "department_id", id, "error", err)
		return internal.NewInternalError("failed to delete department", err)
	}
	if count > 0 {
		s.logger.Warn("refusing to delete non-empty department", "department_id", id, "employee_count", count)
		return internal.ErrDepartmentNotEmpty
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrDepartmentNotFound
		}
		s.logger.Error("failed to delete department", "department_id", id, "error", err)
		return internal.NewInternalError("failed to delete department", err)
	}

	s.logger.Info("department deleted", "department_id", id)
	return nil
}
