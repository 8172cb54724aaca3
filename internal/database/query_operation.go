package database

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/samber/lo"
	"gorm.io/gorm/clause"
	"time"
)

type QueryOperation struct {
	repository *Repository
	airlines   *EntityOperation[operation.AirlineCompany]
	flights    *EntityOperation[operation.Flight]
}

func NewQueryOperation(repository *Repository) *QueryOperation {
	return &QueryOperation{
		repository: repository,
		airlines:   NewEntityOperation[operation.AirlineCompany](repository),
		flights:    NewEntityOperation[operation.Flight](repository),
	}
}

func (queryOperation *QueryOperation) GetAirlinesByCountry(countryId uint) ([]*operation.AirlineCompany, error) {
	return queryOperation.airlines.GetByColumnValue(operation.AirlineColumnCountryId, countryId)
}

func (queryOperation *QueryOperation) GetFlightsByOriginCountryId(countryId uint) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByColumnValue(operation.FlightColumnOriginCountryId, countryId)
}

func (queryOperation *QueryOperation) GetFlightsByDestinationCountryId(countryId uint) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByColumnValue(operation.FlightColumnDestinationCountryId, countryId)
}

func (queryOperation *QueryOperation) GetFlightsByDepartureDate(date time.Time) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByCondition(operation.NewCondition().OnDate(operation.FlightColumnDepartureTime, date))
}

func (queryOperation *QueryOperation) GetFlightsByLandingDate(date time.Time) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByCondition(operation.NewCondition().OnDate(operation.FlightColumnLandingTime, date))
}

func (queryOperation *QueryOperation) window(column operation.Column, window time.Duration) *operation.Condition {
	now := queryOperation.repository.now().UTC()
	return operation.NewCondition().Between(column, now, now.Add(window))
}

func (queryOperation *QueryOperation) GetFlightsDepartingWithin(window time.Duration) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByCondition(queryOperation.window(operation.FlightColumnDepartureTime, window))
}

func (queryOperation *QueryOperation) GetFlightsLandingWithin(window time.Duration) ([]*operation.Flight, error) {
	return queryOperation.flights.GetByCondition(queryOperation.window(operation.FlightColumnLandingTime, window))
}

func (queryOperation *QueryOperation) GetFlightsByCustomer(customerId uint) ([]*operation.Flight, error) {
	tickets := make([]*operation.Ticket, 0)
	db, cancel := queryOperation.repository.session()
	defer cancel()
	err := db.Preload("Flight").
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: string(operation.TicketColumnCustomerId)}, Value: customerId}).
		Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).
		Find(&tickets).Error
	if err != nil {
		return nil, queryOperation.repository.translateError("query flights of customer", err)
	}
	return lo.FilterMap(tickets, func(ticket *operation.Ticket, _ int) (*operation.Flight, bool) {
		return ticket.Flight, ticket.Flight != nil
	}), nil
}
