package employee

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
)

type Employee struct {
	ID           int64                           `gorm:"primaryKey" json:"id"`
	FirstName    string                          `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string                          `gorm:"column:last_name;not null" json:"last_name"`
	Email        string                          `gorm:"column:email;uniqueIndex;not null" json:"email"`
	EmployeeNo   string                          `gorm:"column:employee_no" json:"employee_no"`
	Position     string                          `gorm:"column:position" json:"position"`
	Phone        *string                         `gorm:"column:phone" json:"phone,omitempty"`
	Address      *string                         `gorm:"column:address" json:"address,omitempty"`
	Salary       *int64                          `gorm:"column:salary" json:"salary,omitempty"`
	DepartmentID int64                           `gorm:"column:department_id;not null" json:"department_id"`
	Department   *departmentDatamodel.Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	HireDate     time.Time                       `gorm:"column:hire_date;type:date" json:"hire_date"`
	CreatedAt    time.Time                       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time                       `gorm:"column:updated_at" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
