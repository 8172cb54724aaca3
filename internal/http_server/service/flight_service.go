// Package service
package service

import (
	c "github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	. "github.com/half-nothing/simple-flights/internal/interfaces/service"
	"github.com/samber/lo"
	"time"
)

const DateLayout = "2006-01-02"

type FlightService struct {
	logger    log.LoggerInterface
	config    *c.HttpServerConfig
	countries operation.EntityOperationInterface[operation.Country]
	flights   operation.EntityOperationInterface[operation.Flight]
	query     operation.QueryOperationInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	countries operation.EntityOperationInterface[operation.Country],
	flights operation.EntityOperationInterface[operation.Flight],
	query operation.QueryOperationInterface,
) *FlightService {
	return &FlightService{
		logger:    logger,
		config:    config,
		countries: countries,
		flights:   flights,
		query:     query,
	}
}

var (
	SuccessGetCountries = ApiStatus{StatusName: "GET_COUNTRIES", Description: "获取国家列表成功", HttpCode: Ok}
	SuccessGetAirlines  = ApiStatus{StatusName: "GET_AIRLINES", Description: "获取航空公司列表成功", HttpCode: Ok}
	SuccessGetFlights   = ApiStatus{StatusName: "GET_FLIGHTS", Description: "获取航班列表成功", HttpCode: Ok}
	SuccessGetFlight    = ApiStatus{StatusName: "GET_FLIGHT", Description: "获取航班信息成功", HttpCode: Ok}
)

func (flightService *FlightService) GetCountries() *ApiResponse[ResponseCountries] {
	countries, res := CallDBListFuncAndCheckError[operation.Country, ResponseCountries](flightService.logger, flightService.countries.GetAll)
	if res != nil {
		return res
	}
	data := ResponseCountries(countries)
	return NewApiResponse(&SuccessGetCountries, Unsatisfied, &data)
}

func (flightService *FlightService) GetAirlines(req *RequestAirlines) *ApiResponse[ResponseAirlines] {
	if req.CountryId == 0 {
		return NewApiResponse[ResponseAirlines](&ErrLackParam, Unsatisfied, nil)
	}
	airlines, res := CallDBListFuncAndCheckError[operation.AirlineCompany, ResponseAirlines](flightService.logger, func() ([]*operation.AirlineCompany, error) {
		return flightService.query.GetAirlinesByCountry(req.CountryId)
	})
	if res != nil {
		return res
	}
	data := ResponseAirlines(airlines)
	return NewApiResponse(&SuccessGetAirlines, Unsatisfied, &data)
}

func (flightService *FlightService) GetFlights(req *RequestFlights) *ApiResponse[ResponseFlights] {
	filters := lo.Count([]bool{
		req.OriginCountryId != 0,
		req.DestinationCountryId != 0,
		req.DepartureDate != "",
		req.LandingDate != "",
	}, true)
	if filters > 1 {
		return NewApiResponse[ResponseFlights](&ErrIllegalParam, Unsatisfied, nil)
	}

	var fetch func() ([]*operation.Flight, error)
	switch {
	case req.OriginCountryId != 0:
		fetch = func() ([]*operation.Flight, error) { return flightService.query.GetFlightsByOriginCountryId(req.OriginCountryId) }
	case req.DestinationCountryId != 0:
		fetch = func() ([]*operation.Flight, error) {
			return flightService.query.GetFlightsByDestinationCountryId(req.DestinationCountryId)
		}
	case req.DepartureDate != "":
		date, err := time.Parse(DateLayout, req.DepartureDate)
		if err != nil {
			return NewApiResponse[ResponseFlights](&ErrIllegalParam, Unsatisfied, nil)
		}
		fetch = func() ([]*operation.Flight, error) { return flightService.query.GetFlightsByDepartureDate(date) }
	case req.LandingDate != "":
		date, err := time.Parse(DateLayout, req.LandingDate)
		if err != nil {
			return NewApiResponse[ResponseFlights](&ErrIllegalParam, Unsatisfied, nil)
		}
		fetch = func() ([]*operation.Flight, error) { return flightService.query.GetFlightsByLandingDate(date) }
	default:
		fetch = flightService.flights.GetAll
	}

	flights, res := CallDBListFuncAndCheckError[operation.Flight, ResponseFlights](flightService.logger, fetch)
	if res != nil {
		return res
	}
	data := ResponseFlights(flights)
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &data)
}

func (flightService *FlightService) GetFlightsWithin(req *RequestFlightsWithin) *ApiResponse[ResponseFlights] {
	if req.Hours <= 0 || req.Hours > flightService.config.Limits.MaxWindowHours {
		return NewApiResponse[ResponseFlights](&ErrIllegalParam, Unsatisfied, nil)
	}
	window := time.Duration(req.Hours) * time.Hour
	fetch := flightService.query.GetFlightsDepartingWithin
	if req.Kind == WindowLanding {
		fetch = flightService.query.GetFlightsLandingWithin
	}
	flights, res := CallDBListFuncAndCheckError[operation.Flight, ResponseFlights](flightService.logger, func() ([]*operation.Flight, error) {
		return fetch(window)
	})
	if res != nil {
		return res
	}
	data := ResponseFlights(flights)
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &data)
}

func (flightService *FlightService) GetFlight(req *RequestFlight) *ApiResponse[ResponseFlight] {
	if req.ID == 0 {
		return NewApiResponse[ResponseFlight](&ErrIllegalParam, Unsatisfied, nil)
	}
	flights, res := CallDBListFuncAndCheckError[operation.Flight, ResponseFlight](flightService.logger, func() ([]*operation.Flight, error) {
		return flightService.flights.GetByColumnValue(operation.ColumnId, req.ID)
	})
	if res != nil {
		return res
	}
	if len(flights) == 0 {
		return NewApiResponse[ResponseFlight](&ErrFlightNotFound, Unsatisfied, nil)
	}
	data := ResponseFlight(*flights[0])
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, &data)
}
