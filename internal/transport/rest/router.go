package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/department"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the middleware chain and all API endpoints.
// Read endpoints require authentication only; mutations additionally pass
// the admin gate.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, departmentHandler *department.Handler, employeeHandler *employee.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Health check, outside the API prefix and unauthenticated.
	router.Get("/health", healthHandler.healthCheckHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/register", authHandler.Register)
		})

		// Protected routes
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", departmentHandler.GetDepartments)
				dr.Get("/{id}", departmentHandler.GetDepartment)

				dr.Group(func(ar chi.Router) {
					ar.Use(authHandler.RequireAdmin)
					ar.Post("/", departmentHandler.CreateDepartment)
					ar.Put("/{id}", departmentHandler.UpdateDepartment)
					ar.Delete("/{id}", departmentHandler.DeleteDepartment)
				})
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.GetEmployees)
				er.Get("/{id}", employeeHandler.GetEmployee)

				er.Group(func(ar chi.Router) {
					ar.Use(authHandler.RequireAdmin)
					ar.Post("/", employeeHandler.CreateEmployee)
					ar.Put("/{id}", employeeHandler.UpdateEmployee)
					ar.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})
		})
	})
}
