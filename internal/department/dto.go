package department

import (
	"errors"
	"time"
)

// CreateDepartmentDTO is the request payload for creating a department.
type CreateDepartmentDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (dto CreateDepartmentDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if len(dto.Name) > 100 {
		return errors.New("name must be less than 100 characters")
	}
	return nil
}

// UpdateDepartmentDTO uses pointer fields so a field left out of the JSON
// body stays untouched, while an explicit empty string is applied.
type UpdateDepartmentDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (dto UpdateDepartmentDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	if dto.Name != nil && len(*dto.Name) > 100 {
		return errors.New("name must be less than 100 characters")
	}
	return nil
}

// DepartmentResponse is the list item shape, including the computed
// employee count.
type DepartmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	EmployeeCount int64     `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EmployeeSummary is the department-detail view of a member employee.
type EmployeeSummary struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	EmployeeNo string    `json:"employeeNo"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hireDate"`
}

type DepartmentDetailResponse struct {
	Department
	Employees []EmployeeSummary `json:"employees"`
}
