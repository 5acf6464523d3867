package department

import "time"

type Department struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// WithEmployeeCount carries the computed employee count returned by
// list queries. EmployeeCount is not a column.
type WithEmployeeCount struct {
	Department
	EmployeeCount int64 `gorm:"->" json:"employee_count"`
}
