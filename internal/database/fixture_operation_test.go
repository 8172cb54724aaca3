package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTestDatabase(t *testing.T) {
	database := setupFixtureDatabase(t)
	operations := database.operations

	countries, err := operations.Countries().GetAll()
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Israel", countries[0].Name)
	assert.Equal(t, "Germany", countries[1].Name)

	roles, err := operations.UserRoles().GetAll()
	require.NoError(t, err)
	require.Len(t, roles, len(operation.Roles))
	for i, role := range operation.Roles {
		assert.Equal(t, uint(i+1), roles[i].ID)
		assert.Equal(t, role.String(), roles[i].RoleName)
	}

	users, err := operations.Users().GetAll()
	require.NoError(t, err)
	require.Len(t, users, 7)
	assert.Equal(t, "not legal", users[6].Username)
	assert.Equal(t, "notlegal@gmail.com", users[6].Email)
	assert.NotEqual(t, FixturePassword, users[0].Password)

	administrators, err := operations.Administrators().GetAll()
	require.NoError(t, err)
	require.Len(t, administrators, 2)
	assert.Equal(t, uint(6), administrators[1].UserId)

	customers, err := operations.Customers().GetAll()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "0527588331", customers[1].PhoneNo)

	flights, err := operations.Flights().GetAll()
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, 200, flights[0].RemainingTickets)
	assert.Equal(t, 0, flights[1].RemainingTickets)
	assert.True(t, flights[0].DepartureTime.Equal(time.Date(2022, time.January, 30, 16, 0, 0, 0, time.UTC)))
	assert.True(t, flights[0].LandingTime.Equal(time.Date(2022, time.January, 30, 20, 0, 0, 0, time.UTC)))

	tickets, err := operations.Tickets().GetAll()
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, uint(2), tickets[1].CustomerId)
}

func TestResetTestDatabaseTwice(t *testing.T) {
	database := setupFixtureDatabase(t)
	require.NoError(t, database.operations.Countries().Add(&operation.Country{Name: "France"}))

	require.NoError(t, database.operations.FixtureOperation().ResetTestDatabase())

	countries, err := database.operations.Countries().GetAll()
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, uint(1), countries[0].ID)
}

func TestCreateAllStoredProcedures(t *testing.T) {
	database := setupTestDatabase(t)
	file := filepath.Join(t.TempDir(), "procedures.sql")
	content := "CREATE VIEW v_countries AS SELECT * FROM countries\n|||\n   \n|||\nCREATE VIEW v_flights AS SELECT * FROM flights\n|||"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	require.NoError(t, database.operations.FixtureOperation().CreateAllStoredProcedures(file))

	var count int64
	require.NoError(t, database.repository.DB().Raw("SELECT count(*) FROM sqlite_master WHERE type = ?", "view").Scan(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateAllStoredProceduresRollback(t *testing.T) {
	database := setupTestDatabase(t)
	file := filepath.Join(t.TempDir(), "procedures.sql")
	content := "CREATE VIEW v_countries AS SELECT * FROM countries|||NOT A STATEMENT"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	err := database.operations.FixtureOperation().CreateAllStoredProcedures(file)
	assert.ErrorIs(t, err, operation.ErrBackend)

	var count int64
	require.NoError(t, database.repository.DB().Raw("SELECT count(*) FROM sqlite_master WHERE type = ?", "view").Scan(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAllStoredProceduresMissingFile(t *testing.T) {
	database := setupTestDatabase(t)
	err := database.operations.FixtureOperation().CreateAllStoredProcedures(filepath.Join(t.TempDir(), "missing.sql"))
	assert.ErrorIs(t, err, operation.ErrFixtureFileNotFound)
	assert.Len(t, database.logger.Criticals(), 1)
}

func TestDropAllTables(t *testing.T) {
	database := setupFixtureDatabase(t)
	require.NoError(t, database.operations.FixtureOperation().DropAllTables())

	migrator := database.repository.DB().Migrator()
	for _, model := range operation.AllModels() {
		assert.False(t, migrator.HasTable(model))
	}

	// 再次删除不存在的表不报错
	require.NoError(t, database.operations.FixtureOperation().DropAllTables())

	require.NoError(t, database.operations.FixtureOperation().Migrate())
	assert.True(t, migrator.HasTable(&operation.Ticket{}))
}
