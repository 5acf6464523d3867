package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), cfg.Security.BCryptCost)
		userHash, _ := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)

		users := []struct {
			Email string
			Name  string
			Hash  string
			Role  string
		}{
			{"admin@example.com", "Admin User", string(adminHash), "admin"},
			{"staff@example.com", "Staff User", string(userHash), "user"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}

			if err := db.Exec("INSERT INTO users (email, name, password_hash, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())", u.Email, u.Name, u.Hash, u.Role).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		departments := []struct {
			Name string
			Desc string
		}{
			{"Engineering", "Software development and engineering"},
			{"HR", "Human Resources"},
			{"Marketing", "Marketing and Communications"},
		}

		for _, d := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE name = ?", d.Name).Row()
			if err := row.Scan(&exists); err != nil {
				if err := db.Exec("INSERT INTO departments (name, description, created_at, updated_at) VALUES (?, ?, now(), now())", d.Name, d.Desc).Error; err != nil {
					log.Fatalf("failed to insert department %s: %v", d.Name, err)
				}
				fmt.Printf("Seeded department: %s\n", d.Name)
			}
		}

		employees := []struct {
			FirstName  string
			LastName   string
			Email      string
			EmployeeNo string
			Position   string
			Department string
		}{
			{"John", "Doe", "john.doe@example.com", "EMP-001", "Senior Developer", "Engineering"},
			{"Jane", "Smith", "jane.smith@example.com", "EMP-002", "HR Manager", "HR"},
			{"Mike", "Brown", "mike.brown@example.com", "EMP-003", "Marketing Lead", "Marketing"},
		}

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM employees WHERE email = ?", e.Email).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			var deptID int64
			if err := db.Raw("SELECT id FROM departments WHERE name = ?", e.Department).Row().Scan(&deptID); err != nil {
				log.Fatalf("department not found for employee %s: %v", e.Email, err)
			}

			if err := db.Exec("INSERT INTO employees (first_name, last_name, email, employee_no, position, department_id, hire_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())", e.FirstName, e.LastName, e.Email, e.EmployeeNo, e.Position, deptID, time.Now()).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			fmt.Printf("Seeded employee: %s %s\n", e.FirstName, e.LastName)
		}

		fmt.Println("Seed completed")
	},
}
