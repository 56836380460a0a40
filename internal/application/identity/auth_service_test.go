package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/identity"
	"github.com/stockline/backend/internal/domain/shared"
	"github.com/stockline/backend/internal/infrastructure/auth"
	"github.com/stockline/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository) (*AuthService, *auth.InMemoryTokenBlacklist) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-that-is-long-enough!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "stockline-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, jwtService, blacklist, nil, DefaultAuthServiceConfig(), zap.NewNop()), blacklist
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers new account and signs it in", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		svc, _ := newTestAuthService(repo)

		result, err := svc.Register(context.Background(), RegisterInput{
			Email:       "ops@example.com",
			Password:    "correct-horse",
			DisplayName: "Ops",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "ops@example.com", result.User.Email)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		existing, err := identity.NewUser("ops@example.com", "correct-horse", "Ops")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(existing, nil)

		svc, _ := newTestAuthService(repo)

		_, err = svc.Register(context.Background(), RegisterInput{
			Email:    "ops@example.com",
			Password: "correct-horse",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials return a token", func(t *testing.T) {
		user, err := identity.NewUser("ops@example.com", "correct-horse", "Ops")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc, _ := newTestAuthService(repo)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "ops@example.com",
			Password: "correct-horse",
			IP:       "10.0.0.1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
	})

	t.Run("wrong password is rejected and recorded", func(t *testing.T) {
		user, err := identity.NewUser("ops@example.com", "correct-horse", "Ops")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc, _ := newTestAuthService(repo)

		_, err = svc.Login(context.Background(), LoginInput{
			Email:    "ops@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		svc, _ := newTestAuthService(repo)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the token until expiry", func(t *testing.T) {
		user, err := identity.NewUser("ops@example.com", "correct-horse", "Ops")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc, blacklist := newTestAuthService(repo)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "ops@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		jwtService := auth.NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-that-is-long-enough!",
			AccessTokenExpiration: time.Hour,
			Issuer:                "stockline-test",
		})
		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), claims))

		revoked, err := blacklist.IsRevoked(context.Background(), claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("rotates password after verifying the old one", func(t *testing.T) {
		user, err := identity.NewUser("ops@example.com", "correct-horse", "Ops")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc, _ := newTestAuthService(repo)

		err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordInput{
			OldPassword: "correct-horse",
			NewPassword: "battery-staple",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("battery-staple"))
	})
}
