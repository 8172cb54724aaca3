// Package controller
package controller

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	. "github.com/half-nothing/simple-flights/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	GetCountries(ctx echo.Context) error
	GetAirlines(ctx echo.Context) error
	GetFlights(ctx echo.Context) error
	GetDepartures(ctx echo.Context) error
	GetLandings(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:  logger,
		service: service,
	}
}

func (controller *FlightController) GetCountries(ctx echo.Context) error {
	return controller.service.GetCountries().Response(ctx)
}

func (controller *FlightController) GetAirlines(ctx echo.Context) error {
	data := &RequestAirlines{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetAirlines bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetAirlines(data).Response(ctx)
}

func (controller *FlightController) GetFlights(ctx echo.Context) error {
	data := &RequestFlights{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetFlights(data).Response(ctx)
}

func (controller *FlightController) getFlightsWithin(ctx echo.Context, kind WindowKind) error {
	data := &RequestFlightsWithin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.getFlightsWithin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	data.Kind = kind
	return controller.service.GetFlightsWithin(data).Response(ctx)
}

func (controller *FlightController) GetDepartures(ctx echo.Context) error {
	return controller.getFlightsWithin(ctx, WindowDeparture)
}

func (controller *FlightController) GetLandings(ctx echo.Context) error {
	return controller.getFlightsWithin(ctx, WindowLanding)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data := &RequestFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.service.GetFlight(data).Response(ctx)
}
