// Package service
package service

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
)

type FlightServiceInterface interface {
	GetCountries() *ApiResponse[ResponseCountries]
	GetAirlines(req *RequestAirlines) *ApiResponse[ResponseAirlines]
	GetFlights(req *RequestFlights) *ApiResponse[ResponseFlights]
	GetFlightsWithin(req *RequestFlightsWithin) *ApiResponse[ResponseFlights]
	GetFlight(req *RequestFlight) *ApiResponse[ResponseFlight]
}

type ResponseCountries []*operation.Country

type RequestAirlines struct {
	CountryId uint `query:"country_id"`
}

type ResponseAirlines []*operation.AirlineCompany

// RequestFlights 只能同时使用一个过滤条件, 日期格式为 2006-01-02
type RequestFlights struct {
	OriginCountryId      uint   `query:"origin_country_id"`
	DestinationCountryId uint   `query:"destination_country_id"`
	DepartureDate        string `query:"departure_date"`
	LandingDate          string `query:"landing_date"`
}

type ResponseFlights []*operation.Flight

type WindowKind int

const (
	WindowDeparture WindowKind = iota
	WindowLanding
)

type RequestFlightsWithin struct {
	Kind  WindowKind
	Hours int `query:"hours"`
}

type RequestFlight struct {
	ID uint `param:"id"`
}

type ResponseFlight operation.Flight
