package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/department"
)

type Employee struct {
	ID           int64                  `json:"id"`
	FirstName    string                 `json:"firstName"`
	LastName     string                 `json:"lastName"`
	Email        string                 `json:"email"`
	EmployeeNo   string                 `json:"employeeNo"`
	Position     string                 `json:"position"`
	Phone        *string                `json:"phone,omitempty"`
	Address      *string                `json:"address,omitempty"`
	Salary       *int64                 `json:"salary,omitempty"`
	DepartmentID int64                  `json:"departmentId"`
	Department   *department.Department `json:"department,omitempty"`
	HireDate     time.Time              `json:"hireDate"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		EmployeeNo:   e.EmployeeNo,
		Position:     e.Position,
		Phone:        e.Phone,
		Address:      e.Address,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
		HireDate:     e.HireDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	emp := &Employee{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		EmployeeNo:   e.EmployeeNo,
		Position:     e.Position,
		Phone:        e.Phone,
		Address:      e.Address,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
		HireDate:     e.HireDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Department != nil {
		emp.Department = department.FromDataModel(e.Department)
	}
	return emp
}
