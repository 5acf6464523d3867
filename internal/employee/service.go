package employee

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	List(params SearchParams) ([]*employeeDatamodel.Employee, int64, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	DepartmentExists(departmentID int64) (bool, error)
	Create(e *employeeDatamodel.Employee) error
	Update(e *employeeDatamodel.Employee) error
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

func (s *Service) List(params SearchParams) (*ListResponse, error) {
	params.Normalize()

	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}

	employees := make([]*Employee, 0, len(records))
	for _, record := range records {
		employees = append(employees, FromDataModel(record))
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return &ListResponse{
		Employees:   employees,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: params.Page,
	}, nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	return FromDataModel(record), nil
}

// Create persists a new employee. Email uniqueness is ultimately enforced
// by the unique index; the pre-checks exist for friendly error messages.
func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, internal.ErrEmployeeEmailTaken
	}

	exists, err := s.repo.DepartmentExists(dto.DepartmentID)
	if err != nil {
		s.logger.Error("failed to check department", "department_id", dto.DepartmentID, "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}
	if !exists {
		return nil, internal.ErrDepartmentRef
	}

	now := time.Now()
	hireDate := dto.HireDate
	if hireDate.IsZero() {
		hireDate = now
	}

	record := &employeeDatamodel.Employee{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		EmployeeNo:   dto.EmployeeNo,
		Position:     dto.Position,
		Phone:        dto.Phone,
		Address:      dto.Address,
		Salary:       dto.Salary,
		DepartmentID: dto.DepartmentID,
		HireDate:     hireDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrEmployeeEmailTaken
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, internal.ErrDepartmentRef
		}
		s.logger.Error("failed to create employee", "email", dto.Email, "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	created, err := s.repo.GetByID(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load created employee", err)
	}

	s.logger.Info("employee created", "employee_id", created.ID, "email", created.Email)
	return FromDataModel(created), nil
}

func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewInternalError("failed to get employee", err)
	}

	if dto.Email != nil && *dto.Email != record.Email {
		if existing, err := s.repo.GetByEmail(*dto.Email); err == nil && existing != nil && existing.ID != id {
			return nil, internal.ErrEmployeeEmailTaken
		}
		record.Email = *dto.Email
	}

	if dto.DepartmentID != nil && *dto.DepartmentID != record.DepartmentID {
		exists, err := s.repo.DepartmentExists(*dto.DepartmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to update employee", err)
		}
		if !exists {
			return nil, internal.ErrDepartmentRef
		}
		record.DepartmentID = *dto.DepartmentID
	}

	if dto.FirstName != nil {
		record.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		record.LastName = *dto.LastName
	}
	if dto.EmployeeNo != nil {
		record.EmployeeNo = *dto.EmployeeNo
	}
	if dto.Position != nil {
		record.Position = *dto.Position
	}
	if dto.Phone != nil {
		record.Phone = dto.Phone
	}
	if dto.Address != nil {
		record.Address = dto.Address
	}
	if dto.Salary != nil {
		record.Salary = dto.Salary
	}
	if dto.HireDate != nil {
		record.HireDate = *dto.HireDate
	}
	record.UpdatedAt = time.Now()
	record.Department = nil

	if err := s.repo.Update(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrEmployeeEmailTaken
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, internal.ErrDepartmentRef
		}
		s.logger.Error("failed to update employee", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load updated employee", err)
	}

	return FromDataModel(updated), nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to delete employee", "employee_id", id, "error", err)
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
