// Package service
package service

import (
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
)

type UserServiceInterface interface {
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	GetCustomerFlights(req *RequestCustomerFlights) *ApiResponse[ResponseFlights]
}

type RequestUserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	User  *operation.User `json:"user"`
	Role  string          `json:"role"`
	Token string          `json:"token"`
}

// RequestCustomerFlights 由JWT填充
type RequestCustomerFlights struct {
	Uid  uint
	Role string
}
