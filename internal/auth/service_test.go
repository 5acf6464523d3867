package auth

import (
	"errors"
	"testing"
	"time"

	userDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock RepositoryAPI for testing
type mockUserRepository struct {
	byEmail       map[string]*userDatamodel.User
	byID          map[int64]*userDatamodel.User
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	repo := &mockUserRepository{
		byEmail: make(map[string]*userDatamodel.User),
		byID:    make(map[int64]*userDatamodel.User),
		nextID:  1,
	}

	seed := []*userDatamodel.User{
		{Email: "user@example.com", Name: "Regular User", PasswordHash: string(hashedPassword), Role: userDatamodel.RoleUser, IsActive: true},
		{Email: "admin@example.com", Name: "Admin User", PasswordHash: string(hashedPassword), Role: userDatamodel.RoleAdmin, IsActive: true},
		{Email: "inactive@example.com", Name: "Inactive User", PasswordHash: string(hashedPassword), Role: userDatamodel.RoleUser, IsActive: false},
	}
	for _, u := range seed {
		_ = repo.Create(u)
	}

	return repo
}

func (m *mockUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, exists := m.byEmail[email]; exists {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, exists := m.byID[id]; exists {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Create(u *userDatamodel.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	u.ID = m.nextID
	m.nextID++
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service   *Service
		mockRepo  *mockUserRepository
		tokenGen  *JWTTokenGenerator
		secret    = "test-secret-key-that-is-long-enough"
		accessTTL = 15 * time.Minute
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(secret, accessTTL)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token and the user view", func() {
				resp, err := service.Authenticate(LoginDTO{
					Email:    "user@example.com",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(resp.User.Email).To(gomega.Equal("user@example.com"))
				gomega.Expect(resp.User.Role).To(gomega.Equal("user"))
			})

			ginkgo.It("should embed user id and role in verifiable claims", func() {
				resp, err := service.Authenticate(LoginDTO{
					Email:    "admin@example.com",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(resp.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("2"))
				gomega.Expect(claims.Role).To(gomega.Equal("admin"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return error for unknown email", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "nonexistent@example.com",
					Password: "any_password",
				})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})

			ginkgo.It("should return error for wrong password", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "user@example.com",
					Password: "wrong_password",
				})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})

			ginkgo.It("should not reveal whether the email exists", func() {
				_, unknownErr := service.Authenticate(LoginDTO{Email: "nobody@example.com", Password: "x_password"})
				_, wrongErr := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "x_password"})

				gomega.Expect(unknownErr).To(gomega.Equal(wrongErr))
			})
		})

		ginkgo.Context("when the account is inactive", func() {
			ginkgo.It("should return ErrUserInactive", func() {
				_, err := service.Authenticate(LoginDTO{
					Email:    "inactive@example.com",
					Password: "correct_password",
				})

				gomega.Expect(err).To(gomega.Equal(ErrUserInactive))
			})
		})

		ginkgo.Context("when input is missing", func() {
			ginkgo.It("should return a validation error", func() {
				_, err := service.Authenticate(LoginDTO{Email: "", Password: ""})

				gomega.Expect(err).To(gomega.HaveOccurred())
				_, ok := err.(ValidationError)
				gomega.Expect(ok).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create a non-admin account", func() {
			created, err := service.Register(RegisterDTO{
				Email:    "new@example.com",
				Password: "secret123",
				Name:     "New Person",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Role).To(gomega.Equal("user"))
			gomega.Expect(created.ID).ToNot(gomega.BeZero())
		})

		ginkgo.It("should hash the password before storing", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "hashed@example.com",
				Password: "secret123",
				Name:     "Hashed",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			stored, err := mockRepo.GetByEmail("hashed@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(stored.PasswordHash).ToNot(gomega.Equal("secret123"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123"))).To(gomega.Succeed())
		})

		ginkgo.It("should reject a duplicate email", func() {
			_, err := service.Register(RegisterDTO{
				Email:    "user@example.com",
				Password: "secret123",
				Name:     "Duplicate",
			})

			gomega.Expect(err).To(gomega.Equal(ErrEmailTaken))
		})

		ginkgo.It("should reject invalid input", func() {
			_, err := service.Register(RegisterDTO{Email: "not-an-email", Password: "secret123", Name: "X"})
			gomega.Expect(err).To(gomega.HaveOccurred())

			_, err = service.Register(RegisterDTO{Email: "ok@example.com", Password: "short", Name: "X"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should round-trip claims through issue and verify", func() {
			token, err := tokenGen.GenerateAccessToken(42, "admin")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := tokenGen.ValidateToken(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("42"))
			gomega.Expect(claims.Role).To(gomega.Equal("admin"))
		})

		ginkgo.It("should reject an expired token", func() {
			expiredGen := NewJWTTokenGenerator(secret, -1*time.Minute)
			token, err := expiredGen.GenerateAccessToken(42, "user")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = expiredGen.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
		})

		ginkgo.It("should reject a token signed with another secret", func() {
			otherGen := NewJWTTokenGenerator("another-secret-that-is-long-enough!", accessTTL)
			token, err := otherGen.GenerateAccessToken(42, "user")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = tokenGen.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := tokenGen.ValidateToken("not.a.token")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("GetUserByID", func() {
		ginkgo.It("should return the current user record", func() {
			u, err := service.GetUserByID(1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.Email).To(gomega.Equal("user@example.com"))
		})

		ginkgo.It("should fail for unknown ids", func() {
			_, err := service.GetUserByID(9999)
			gomega.Expect(err).To(gomega.Equal(ErrUserNotFound))
		})

		ginkgo.It("should fail when the repository errors", func() {
			mockRepo.setError(errors.New("db down"))
			_, err := service.GetUserByID(1)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
