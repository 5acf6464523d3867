package employee_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.RepositoryAPI for testing
type MockRepository struct {
	employees   map[int64]*employeeDatamodel.Employee
	departments map[int64]bool
	nextID      int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		employees:   make(map[int64]*employeeDatamodel.Employee),
		departments: make(map[int64]bool),
		nextID:      1,
	}
}

func (m *MockRepository) List(params employee.SearchParams) ([]*employeeDatamodel.Employee, int64, error) {
	var matched []*employeeDatamodel.Employee
	for _, e := range m.employees {
		if params.DepartmentID != nil && e.DepartmentID != *params.DepartmentID {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(e.FirstName), needle) &&
				!strings.Contains(strings.ToLower(e.LastName), needle) &&
				!strings.Contains(strings.ToLower(e.Email), needle) &&
				!strings.Contains(strings.ToLower(e.Position), needle) {
				continue
			}
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	offset := params.Offset()
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockRepository) GetByEmail(email string) (*employeeDatamodel.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) DepartmentExists(departmentID int64) (bool, error) {
	return m.departments[departmentID], nil
}

func (m *MockRepository) Create(e *employeeDatamodel.Employee) error {
	e.ID = m.nextID
	m.nextID++
	m.employees[e.ID] = e
	return nil
}

func (m *MockRepository) Update(e *employeeDatamodel.Employee) error {
	m.employees[e.ID] = e
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if _, ok := m.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.employees, id)
	return nil
}

var _ = Describe("EmployeeService", func() {
	var (
		repo    *MockRepository
		service *employee.Service
	)

	createEmployee := func(first, last, email string, departmentID int64) *employee.Employee {
		created, err := service.Create(employee.CreateEmployeeDTO{
			FirstName:    first,
			LastName:     last,
			Email:        email,
			Position:     "Analyst",
			DepartmentID: departmentID,
		})
		Expect(err).NotTo(HaveOccurred())
		return created
	}

	BeforeEach(func() {
		repo = NewMockRepository()
		repo.departments[1] = true
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(repo, slogger)
	})

	Describe("Create", func() {
		It("should create an employee in an existing department", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)

			Expect(created.ID).NotTo(BeZero())
			Expect(created.Email).To(Equal("ann@example.com"))
			Expect(created.DepartmentID).To(Equal(int64(1)))
		})

		It("should default the hire date when missing", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)
			Expect(created.HireDate).To(BeTemporally("~", time.Now(), time.Minute))
		})

		It("should reject a taken email", func() {
			createEmployee("Ann", "Lee", "ann@example.com", 1)

			_, err := service.Create(employee.CreateEmployeeDTO{
				FirstName:    "Other",
				LastName:     "Person",
				Email:        "ann@example.com",
				DepartmentID: 1,
			})
			Expect(err).To(Equal(internal.ErrEmployeeEmailTaken))
		})

		It("should reject an unknown department", func() {
			_, err := service.Create(employee.CreateEmployeeDTO{
				FirstName:    "Ann",
				LastName:     "Lee",
				Email:        "ann@example.com",
				DepartmentID: 999,
			})
			Expect(err).To(Equal(internal.ErrDepartmentRef))
		})

		It("should require first name, last name, email and department", func() {
			_, err := service.Create(employee.CreateEmployeeDTO{Email: "ann@example.com"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})
	})

	Describe("Update", func() {
		It("should leave fields absent from the payload untouched", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)

			newPosition := "Senior Analyst"
			updated, err := service.Update(created.ID, employee.UpdateEmployeeDTO{Position: &newPosition})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Position).To(Equal("Senior Analyst"))
			Expect(updated.FirstName).To(Equal("Ann"))
			Expect(updated.LastName).To(Equal("Lee"))
			Expect(updated.Email).To(Equal("ann@example.com"))
		})

		It("should reject changing the email to a taken one", func() {
			createEmployee("Ann", "Lee", "ann@example.com", 1)
			other := createEmployee("Bob", "Ray", "bob@example.com", 1)

			taken := "ann@example.com"
			_, err := service.Update(other.ID, employee.UpdateEmployeeDTO{Email: &taken})
			Expect(err).To(Equal(internal.ErrEmployeeEmailTaken))
		})

		It("should allow resubmitting the employee's own email", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)

			same := "ann@example.com"
			_, err := service.Update(created.ID, employee.UpdateEmployeeDTO{Email: &same})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should validate a changed department reference", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)

			badDept := int64(999)
			_, err := service.Update(created.ID, employee.UpdateEmployeeDTO{DepartmentID: &badDept})
			Expect(err).To(Equal(internal.ErrDepartmentRef))
		})

		It("should return NotFound for an unknown id", func() {
			name := "Ann"
			_, err := service.Update(404, employee.UpdateEmployeeDTO{FirstName: &name})
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Delete", func() {
		It("should delete an existing employee", func() {
			created := createEmployee("Ann", "Lee", "ann@example.com", 1)

			Expect(service.Delete(created.ID)).To(Succeed())

			_, err := service.GetByID(created.ID)
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})

		It("should return NotFound for an unknown id", func() {
			Expect(service.Delete(404)).To(Equal(internal.ErrEmployeeNotFound))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			createEmployee("Ann", "Lee", "ann@example.com", 1)
			createEmployee("Bob", "Ray", "bob@example.com", 1)
			createEmployee("Cara", "Singh", "cara@example.com", 1)
		})

		It("should compute total pages as a ceiling", func() {
			result, err := service.List(employee.SearchParams{Page: 1, Limit: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(3)))
			Expect(result.TotalPages).To(Equal(2))
			Expect(result.CurrentPage).To(Equal(1))
			Expect(result.Employees).To(HaveLen(2))
		})

		It("should return the partial last page", func() {
			result, err := service.List(employee.SearchParams{Page: 2, Limit: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Employees).To(HaveLen(1))
			Expect(result.CurrentPage).To(Equal(2))
		})

		It("should normalize out-of-range paging values", func() {
			result, err := service.List(employee.SearchParams{Page: 0, Limit: -5})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.CurrentPage).To(Equal(1))
			Expect(result.Employees).To(HaveLen(3))
		})

		It("should filter by search term", func() {
			result, err := service.List(employee.SearchParams{Search: "ann", Page: 1, Limit: 10})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(1)))
			Expect(result.Employees[0].Email).To(Equal("ann@example.com"))
		})
	})
})
