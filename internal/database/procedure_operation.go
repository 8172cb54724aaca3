package database

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"gorm.io/gorm"
	"strings"
	"time"
)

// 存储过程只在 PostgreSQL 上定义, 见 general.procedures_file
const (
	ProcedureGetAirlineByUsername  = "sp_get_airline_by_username"
	ProcedureGetCustomerByUsername = "sp_get_customer_by_username"
	ProcedureGetUserByUsername     = "sp_get_user_by_username"
	ProcedureGetFlightsByAirlineId = "sp_get_flights_by_airline_id"
	ProcedureGetTicketsByCustomer  = "sp_get_tickets_by_customer_id"
	ProcedureGetArrivalFlights     = "sp_get_arrival_flights"
	ProcedureGetDepartureFlights   = "sp_get_departure_flights"
	ProcedureGetFlightsByParameter = "sp_get_flights_by_parameters"
)

type ProcedureOperation struct {
	repository *Repository
}

func NewProcedureOperation(repository *Repository) *ProcedureOperation {
	return &ProcedureOperation{repository: repository}
}

// procedureQuery 构造 SELECT * FROM name(?, ...), 参数始终以绑定变量传递
func procedureQuery(db *gorm.DB, name string, args ...interface{}) *gorm.DB {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	return db.Raw("SELECT * FROM "+name+"("+placeholders+")", args...)
}

func callProcedure[T any](repository *Repository, name string, args ...interface{}) ([]*T, error) {
	db, cancel := repository.session()
	defer cancel()
	rows := make([]*T, 0)
	if err := procedureQuery(db, name, args...).Scan(&rows).Error; err != nil {
		return nil, repository.translateError("call "+name, err)
	}
	return rows, nil
}

func firstRow[T any](rows []*T, notFound error) (*T, error) {
	if len(rows) == 0 {
		return nil, notFound
	}
	return rows[0], nil
}

func (procedure *ProcedureOperation) GetAirlineByUsername(username string) (*operation.AirlineCompany, error) {
	rows, err := callProcedure[operation.AirlineCompany](procedure.repository, ProcedureGetAirlineByUsername, username)
	if err != nil {
		return nil, err
	}
	return firstRow(rows, operation.ErrAirlineNotFound)
}

func (procedure *ProcedureOperation) GetCustomerByUsername(username string) (*operation.Customer, error) {
	rows, err := callProcedure[operation.Customer](procedure.repository, ProcedureGetCustomerByUsername, username)
	if err != nil {
		return nil, err
	}
	return firstRow(rows, operation.ErrCustomerNotFound)
}

func (procedure *ProcedureOperation) GetUserByUsername(username string) (*operation.User, error) {
	rows, err := callProcedure[operation.User](procedure.repository, ProcedureGetUserByUsername, username)
	if err != nil {
		return nil, err
	}
	return firstRow(rows, operation.ErrUserNotFound)
}

func (procedure *ProcedureOperation) GetFlightsByAirlineId(airlineId uint) ([]*operation.Flight, error) {
	return callProcedure[operation.Flight](procedure.repository, ProcedureGetFlightsByAirlineId, airlineId)
}

func (procedure *ProcedureOperation) GetTicketsByCustomerId(customerId uint) ([]*operation.Ticket, error) {
	return callProcedure[operation.Ticket](procedure.repository, ProcedureGetTicketsByCustomer, customerId)
}

func (procedure *ProcedureOperation) GetArrivalFlights(countryId uint) ([]*operation.Flight, error) {
	return callProcedure[operation.Flight](procedure.repository, ProcedureGetArrivalFlights, countryId)
}

func (procedure *ProcedureOperation) GetDepartureFlights(countryId uint) ([]*operation.Flight, error) {
	return callProcedure[operation.Flight](procedure.repository, ProcedureGetDepartureFlights, countryId)
}

func (procedure *ProcedureOperation) GetFlightsByParameters(originCountryId, destinationCountryId uint, date time.Time) ([]*operation.Flight, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return callProcedure[operation.Flight](procedure.repository, ProcedureGetFlightsByParameter, originCountryId, destinationCountryId, day)
}
