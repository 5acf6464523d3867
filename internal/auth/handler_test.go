package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/employee-management/internal/auth"
	authPostgres "github.com/frahmantamala/employee-management/internal/auth/postgres"
	userDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/user"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		service *auth.Service
		handler *auth.Handler
		router  *chi.Mux
	)

	const secret = "integration-test-secret-key-32bytes!"

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		seedUsers := []*userDatamodel.User{
			{Email: "admin@example.com", Name: "Admin", PasswordHash: string(hash), Role: userDatamodel.RoleAdmin, IsActive: true},
			{Email: "staff@example.com", Name: "Staff", PasswordHash: string(hash), Role: userDatamodel.RoleUser, IsActive: true},
		}
		for _, u := range seedUsers {
			Expect(db.Create(u).Error).NotTo(HaveOccurred())
		}

		tokenGen := auth.NewJWTTokenGenerator(secret, 15*time.Minute)
		service = auth.NewService(authPostgres.NewRepository(db), tokenGen, bcrypt.MinCost)
		handler = auth.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/api/auth/login", handler.Login)
		router.Post("/api/auth/register", handler.Register)
		router.Group(func(r chi.Router) {
			r.Use(handler.AuthMiddleware)
			r.Get("/api/protected", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r.Group(func(ar chi.Router) {
				ar.Use(handler.RequireAdmin)
				ar.Post("/api/admin-only", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusCreated)
				})
			})
		})
	})

	login := func(email, password string) *auth.LoginResponse {
		body, _ := json.Marshal(map[string]string{"email": email, "password": password})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp auth.LoginResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return &resp
	}

	Describe("POST /api/auth/login", func() {
		It("should return a token and the user for valid credentials", func() {
			resp := login("admin@example.com", "admin123")

			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User.Email).To(Equal("admin@example.com"))
			Expect(resp.User.Role).To(Equal("admin"))
		})

		It("should return 401 for bad credentials", func() {
			body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "nope"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /api/auth/register", func() {
		It("should create a non-admin account", func() {
			body, _ := json.Marshal(map[string]string{
				"email":    "newbie@example.com",
				"password": "secret123",
				"name":     "Newbie",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var created auth.User
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.Role).To(Equal("user"))
		})

		It("should return 400 for a duplicate email", func() {
			body, _ := json.Marshal(map[string]string{
				"email":    "staff@example.com",
				"password": "secret123",
				"name":     "Duplicate",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("AuthMiddleware", func() {
		It("should return 401 without an authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 401 for a malformed header", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			req.Header.Set("Authorization", "Token abc")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 401 for an invalid token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			req.Header.Set("Authorization", "Bearer not-a-real-token")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 401 for an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator(secret, -1*time.Minute)
			token, err := expiredGen.GenerateAccessToken(1, "admin")
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should pass through with a valid token", func() {
			resp := login("staff@example.com", "admin123")

			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("should return 401 when the account was deactivated after issuance", func() {
			resp := login("staff@example.com", "admin123")

			Expect(db.Model(&userDatamodel.User{}).
				Where("email = ?", "staff@example.com").
				Update("is_active", false).Error).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("RequireAdmin", func() {
		It("should return 403 for a non-admin even with a valid token", func() {
			resp := login("staff@example.com", "admin123")

			req := httptest.NewRequest(http.MethodPost, "/api/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should let an admin through", func() {
			resp := login("admin@example.com", "admin123")

			req := httptest.NewRequest(http.MethodPost, "/api/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("should apply a role change on the next request", func() {
			resp := login("staff@example.com", "admin123")

			Expect(db.Model(&userDatamodel.User{}).
				Where("email = ?", "staff@example.com").
				Update("role", "admin").Error).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/api/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})
	})
})
