package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("should register a user and return a valid token", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")

		token, user, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, token)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.NotEqual(t, "password123", user.PasswordHash)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")

		_, _, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, "Janet", "jane@example.com", "password456")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("should log in with correct credentials", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")
		_, registered, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)

		token, user, err := svc.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("should reject wrong password and unknown email", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")
		_, _, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("should reject tampered tokens", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")
		token, _, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)

		other := NewAuthService(setupTestDB(t), "different-secret")
		_, err = other.ValidateToken(token)
		assert.Error(t, err)

		_, err = svc.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("should load user by id", func(t *testing.T) {
		svc := NewAuthService(setupTestDB(t), "test-secret")
		_, registered, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")
		require.NoError(t, err)

		user, err := svc.GetUserByID(ctx, registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
	})
}
