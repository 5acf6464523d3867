package employee

import (
	"errors"
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CreateEmployeeDTO is the request payload for creating an employee.
type CreateEmployeeDTO struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	EmployeeNo   string    `json:"employeeNo"`
	Position     string    `json:"position"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Salary       *int64    `json:"salary,omitempty"`
	DepartmentID int64     `json:"departmentId"`
	HireDate     time.Time `json:"hireDate,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.FirstName == "" {
		return errors.New("firstName is required")
	}
	if dto.LastName == "" {
		return errors.New("lastName is required")
	}
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if dto.DepartmentID <= 0 {
		return errors.New("departmentId is required")
	}
	if dto.Salary != nil && *dto.Salary < 0 {
		return errors.New("salary cannot be negative")
	}
	return nil
}

// UpdateEmployeeDTO uses pointer fields for explicit present-vs-absent
// semantics: a field missing from the JSON body is left untouched.
type UpdateEmployeeDTO struct {
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	EmployeeNo   *string    `json:"employeeNo,omitempty"`
	Position     *string    `json:"position,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Salary       *int64     `json:"salary,omitempty"`
	DepartmentID *int64     `json:"departmentId,omitempty"`
	HireDate     *time.Time `json:"hireDate,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	if dto.FirstName != nil && *dto.FirstName == "" {
		return errors.New("firstName cannot be empty")
	}
	if dto.LastName != nil && *dto.LastName == "" {
		return errors.New("lastName cannot be empty")
	}
	if dto.Email != nil && (*dto.Email == "" || !strings.Contains(*dto.Email, "@")) {
		return errors.New("email must be valid")
	}
	if dto.DepartmentID != nil && *dto.DepartmentID <= 0 {
		return errors.New("departmentId must be positive")
	}
	if dto.Salary != nil && *dto.Salary < 0 {
		return errors.New("salary cannot be negative")
	}
	return nil
}

// SearchParams are the list filters parsed from query parameters.
type SearchParams struct {
	DepartmentID *int64
	Search       string
	Page         int
	Limit        int
}

// Normalize clamps page and limit to sane bounds.
func (p *SearchParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListResponse is the paginated list contract.
type ListResponse struct {
	Employees   []*Employee `json:"employees"`
	Total       int64       `json:"total"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}
