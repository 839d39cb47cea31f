package auth

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLogin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Login Tests")
	defer suiteResult.PrintSummary()

	// Test successful login
	t.Run("TestSuccessfulLogin", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Login")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Successful Login",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Successful Login", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		expectedUser := &models.User{
			Email: "somchai@example.com",
			Role:  models.RoleStudent,
		}
		expectedToken := "jwt-token-123"

		mockService.On("Login", "somchai@example.com", "password123").Return(expectedUser, expectedToken, nil)

		user, token, err := mockService.Login("somchai@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, expectedUser, user)
		assert.Equal(t, expectedToken, token)
		mockService.AssertExpectations(t)
	})

	// Test login with invalid credentials
	t.Run("TestLoginInvalidCredentials", func(t *testing.T) {
		timer := test.NewTestTimer("Login Invalid Credentials")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Invalid Credentials",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Invalid Credentials", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		mockService.On("Login", "invalid@example.com", "wrongpassword").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("invalid@example.com", "wrongpassword")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	// Test role constants used by RequireRole
	t.Run("TestAccountRoles", func(t *testing.T) {
		timer := test.NewTestTimer("Account Roles")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Account Roles",
				Duration: duration,
				Passed:   true,
			})
		}()

		assert.Equal(t, "Student", models.RoleStudent)
		assert.Equal(t, "Faculty", models.RoleFaculty)
		assert.Equal(t, "Admin", models.RoleAdmin)
	})
}
