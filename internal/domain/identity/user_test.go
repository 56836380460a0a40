package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with hashed password", func(t *testing.T) {
		u, err := NewUser(" Stores@Example.COM ", "secret-pw1", "Stores")

		require.NoError(t, err)
		assert.Equal(t, "stores@example.com", u.Email)
		assert.Equal(t, UserStatusActive, u.Status)
		assert.NotEqual(t, "secret-pw1", u.PasswordHash)
		assert.True(t, u.VerifyPassword("secret-pw1"))
		assert.False(t, u.VerifyPassword("wrong"))
		assert.NotEmpty(t, u.GetDomainEvents())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "secret-pw1", "")
		require.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("a@b.co", "short", "")
		require.Error(t, err)
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("a@b.co", "secret-pw1", "")
	require.NoError(t, err)

	require.Error(t, u.ChangePassword("wrong", "next-pw-22"))

	require.NoError(t, u.ChangePassword("secret-pw1", "next-pw-22"))
	assert.True(t, u.VerifyPassword("next-pw-22"))
	assert.False(t, u.VerifyPassword("secret-pw1"))
}

func TestUser_Lockout(t *testing.T) {
	u, err := NewUser("a@b.co", "secret-pw1", "")
	require.NoError(t, err)

	assert.False(t, u.RecordLoginFailure(3, time.Hour))
	assert.False(t, u.RecordLoginFailure(3, time.Hour))
	assert.True(t, u.RecordLoginFailure(3, time.Hour))
	assert.True(t, u.IsLocked())
	assert.False(t, u.CanLogin())

	require.NoError(t, u.Unlock())
	assert.True(t, u.CanLogin())
	assert.Error(t, u.Unlock())
}

func TestUser_ExpiredLock(t *testing.T) {
	u, err := NewUser("a@b.co", "secret-pw1", "")
	require.NoError(t, err)

	u.RecordLoginFailure(1, -time.Minute)
	assert.False(t, u.IsLocked())
	assert.True(t, u.CanLogin())
}

func TestUser_RecordLoginSuccess(t *testing.T) {
	u, err := NewUser("a@b.co", "secret-pw1", "")
	require.NoError(t, err)
	u.FailedAttempts = 2

	u.RecordLoginSuccess("10.0.0.1")
	assert.Equal(t, 0, u.FailedAttempts)
	assert.Equal(t, "10.0.0.1", u.LastLoginIP)
	require.NotNil(t, u.LastLoginAt)
}
