package database

import (
	"testing"

	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	database := setupTestDatabase(t)
	users := database.operations.UserOperation()

	user, err := users.NewUser("Elad", "secret", "elad@gmail.com", 1)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, users.VerifyUserPassword(user, "secret"))
	assert.False(t, users.VerifyUserPassword(user, "Secret"))
}

func TestAuthenticate(t *testing.T) {
	database := setupFixtureDatabase(t)
	users := database.operations.UserOperation()

	user, err := users.Authenticate("Elad", FixturePassword)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	role, err := users.GetUserRole(user)
	require.NoError(t, err)
	assert.Equal(t, operation.RoleCustomer.String(), role.RoleName)

	_, err = users.Authenticate("Elad", "wrong")
	assert.ErrorIs(t, err, operation.ErrWrongPassword)

	_, err = users.Authenticate("nobody", FixturePassword)
	assert.ErrorIs(t, err, operation.ErrUserNotFound)

	_, err = users.GetUserRole(&operation.User{UserRoleId: 42})
	assert.ErrorIs(t, err, operation.ErrRoleNotFound)
}
