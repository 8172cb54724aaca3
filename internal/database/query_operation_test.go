package database

import (
	"testing"
	"time"

	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAirlinesByCountry(t *testing.T) {
	database := setupFixtureDatabase(t)
	query := database.operations.QueryOperation()

	airlines, err := query.GetAirlinesByCountry(1)
	require.NoError(t, err)
	require.Len(t, airlines, 1)
	assert.Equal(t, "Yoni", airlines[0].Name)

	airlines, err = query.GetAirlinesByCountry(99)
	require.NoError(t, err)
	assert.Empty(t, airlines)
}

func TestGetFlightsByCountry(t *testing.T) {
	database := setupFixtureDatabase(t)
	query := database.operations.QueryOperation()

	flights, err := query.GetFlightsByOriginCountryId(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, flightIds(flights))

	flights, err = query.GetFlightsByOriginCountryId(2)
	require.NoError(t, err)
	assert.Empty(t, flights)

	flights, err = query.GetFlightsByDestinationCountryId(2)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, flightIds(flights))

	flights, err = query.GetFlightsByDestinationCountryId(1)
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestGetFlightsByDate(t *testing.T) {
	database := setupFixtureDatabase(t)
	query := database.operations.QueryOperation()

	// 一趟跨越午夜的航班, 起飞与降落不在同一天
	require.NoError(t, database.operations.Flights().Add(&operation.Flight{
		AirlineCompanyId:     1,
		OriginCountryId:      2,
		DestinationCountryId: 1,
		DepartureTime:        time.Date(2022, time.January, 30, 23, 0, 0, 0, time.UTC),
		LandingTime:          time.Date(2022, time.January, 31, 3, 0, 0, 0, time.UTC),
		RemainingTickets:     10,
	}))

	// 时分秒不参与比较
	flights, err := query.GetFlightsByDepartureDate(time.Date(2022, time.January, 30, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, flightIds(flights))

	flights, err = query.GetFlightsByDepartureDate(time.Date(2022, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, flights)

	flights, err = query.GetFlightsByLandingDate(time.Date(2022, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, flightIds(flights))

	flights, err = query.GetFlightsByLandingDate(time.Date(2022, time.January, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, flightIds(flights))
}

func TestGetFlightsWithinWindow(t *testing.T) {
	database := setupFixtureDatabase(t)
	query := database.operations.QueryOperation()

	tests := []struct {
		name     string
		call     func(time.Duration) ([]*operation.Flight, error)
		window   time.Duration
		expected []uint
	}{
		{"departure in window", query.GetFlightsDepartingWithin, 5 * time.Hour, []uint{1, 2}},
		{"departure on boundary", query.GetFlightsDepartingWithin, 4 * time.Hour, []uint{1, 2}},
		{"departure after window", query.GetFlightsDepartingWithin, 3 * time.Hour, []uint{}},
		{"zero window", query.GetFlightsDepartingWithin, 0, []uint{}},
		{"landing on boundary", query.GetFlightsLandingWithin, 8 * time.Hour, []uint{1, 2}},
		{"landing after window", query.GetFlightsLandingWithin, 7 * time.Hour, []uint{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flights, err := test.call(test.window)
			require.NoError(t, err)
			assert.Equal(t, test.expected, flightIds(flights))
		})
	}
}

// 当前时间带纳秒且不在UTC时区, 与 time.Now() 返回值一致
func TestGetFlightsWithinWindowBoundaries(t *testing.T) {
	database := setupFixtureDatabase(t)
	now := time.Date(2030, time.March, 1, 10, 0, 0, 123456789, time.FixedZone("UTC+3", 3*60*60))
	database.repository.SetClock(func() time.Time { return now })
	window := 2 * time.Hour

	departures := []time.Time{
		now,
		now.Add(window),
		now.Add(window + time.Second),
		now.Add(-time.Nanosecond),
	}
	flights := make([]*operation.Flight, 0, len(departures))
	for _, departure := range departures {
		flights = append(flights, &operation.Flight{
			AirlineCompanyId:     1,
			OriginCountryId:      1,
			DestinationCountryId: 2,
			DepartureTime:        departure,
			LandingTime:          departure.Add(3 * time.Hour),
			RemainingTickets:     10,
		})
	}
	require.NoError(t, database.operations.Flights().AddAll(flights))
	require.Equal(t, []uint{3, 4, 5, 6}, flightIds(flights))

	query := database.operations.QueryOperation()

	rows, err := query.GetFlightsDepartingWithin(window)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 4}, flightIds(rows))

	rows, err = query.GetFlightsLandingWithin(window + 3*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 4, 6}, flightIds(rows))

	rows, err = query.GetFlightsDepartingWithin(0)
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, flightIds(rows))
}

func TestGetFlightsWithinWindowExcludesPast(t *testing.T) {
	database := setupFixtureDatabase(t)
	database.repository.SetClock(func() time.Time {
		return time.Date(2022, time.January, 30, 17, 0, 0, 0, time.UTC)
	})
	query := database.operations.QueryOperation()

	flights, err := query.GetFlightsDepartingWithin(48 * time.Hour)
	require.NoError(t, err)
	assert.Empty(t, flights)

	flights, err = query.GetFlightsLandingWithin(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, flightIds(flights))
}

func TestGetFlightsByCustomer(t *testing.T) {
	database := setupFixtureDatabase(t)
	query := database.operations.QueryOperation()

	flights, err := query.GetFlightsByCustomer(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, flightIds(flights))

	require.NoError(t, database.operations.Tickets().AddAll([]*operation.Ticket{
		{FlightId: 2, CustomerId: 1},
		{FlightId: 1, CustomerId: 1},
	}))
	flights, err = query.GetFlightsByCustomer(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 1}, flightIds(flights))
	assert.Equal(t, 200, flights[0].RemainingTickets)

	flights, err = query.GetFlightsByCustomer(99)
	require.NoError(t, err)
	assert.Empty(t, flights)
}
