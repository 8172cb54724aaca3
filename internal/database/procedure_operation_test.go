package database

import (
	"errors"
	"testing"
	"time"

	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProcedureQuery(t *testing.T) {
	database := setupTestDatabase(t)
	dryRun := database.repository.DB().Session(&gorm.Session{DryRun: true})
	day := time.Date(2022, time.January, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{ProcedureGetUserByUsername, []interface{}{"Elad"}, "SELECT * FROM sp_get_user_by_username(?)"},
		{ProcedureGetArrivalFlights, []interface{}{uint(1)}, "SELECT * FROM sp_get_arrival_flights(?)"},
		{ProcedureGetFlightsByParameter, []interface{}{uint(1), uint(2), day}, "SELECT * FROM sp_get_flights_by_parameters(?, ?, ?)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stmt := procedureQuery(dryRun, test.name, test.args...).Statement
			assert.Equal(t, test.expected, stmt.SQL.String())
			assert.Equal(t, test.args, stmt.Vars)
		})
	}
}

func TestFirstRow(t *testing.T) {
	notFound := errors.New("not found")

	row, err := firstRow([]*operation.User{}, notFound)
	assert.Nil(t, row)
	assert.ErrorIs(t, err, notFound)

	row, err = firstRow([]*operation.User{{Username: "Elad"}, {Username: "Uri"}}, notFound)
	require.NoError(t, err)
	assert.Equal(t, "Elad", row.Username)
}

func TestProcedureMissingOnBackend(t *testing.T) {
	database := setupTestDatabase(t)
	procedure := database.operations.ProcedureOperation()

	_, err := procedure.GetUserByUsername("Elad")
	assert.ErrorIs(t, err, operation.ErrBackend)

	_, err = procedure.GetFlightsByParameters(1, 2, time.Now())
	assert.ErrorIs(t, err, operation.ErrBackend)

	assert.Len(t, database.logger.Criticals(), 2)
}
