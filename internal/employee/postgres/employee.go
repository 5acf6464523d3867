package postgres

import (
	"errors"
	"strings"

	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

// List returns one page of employees ordered by last name, plus the total
// matching count. Search matches case-insensitively against first name,
// last name, email and position.
func (r *EmployeeRepository) List(params employee.SearchParams) ([]*employeeDatamodel.Employee, int64, error) {
	var total int64
	if err := r.applyFilters(r.db.Model(&employeeDatamodel.Employee{}), params).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []*employeeDatamodel.Employee
	err := r.applyFilters(r.db.Model(&employeeDatamodel.Employee{}), params).
		Preload("Department").
		Order("last_name ASC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *EmployeeRepository) applyFilters(tx *gorm.DB, params employee.SearchParams) *gorm.DB {
	if params.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *params.DepartmentID)
	}
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		tx = tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return tx
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.Preload("Department").Where("id = ?", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) DepartmentExists(departmentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&departmentDatamodel.Department{}).
		Where("id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Create(e *employeeDatamodel.Employee) error {
	return r.db.Omit("Department").Create(e).Error
}

func (r *EmployeeRepository) Update(e *employeeDatamodel.Employee) error {
	return r.db.Omit("Department").Save(e).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
