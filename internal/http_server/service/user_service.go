// Package service
package service

import (
	c "github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	. "github.com/half-nothing/simple-flights/internal/interfaces/service"
)

type UserService struct {
	logger        log.LoggerInterface
	config        *c.HttpServerConfig
	userOperation operation.UserOperationInterface
	customers     operation.EntityOperationInterface[operation.Customer]
	query         operation.QueryOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
	customers operation.EntityOperationInterface[operation.Customer],
	query operation.QueryOperationInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		config:        config,
		userOperation: userOperation,
		customers:     customers,
		query:         query,
	}
}

var (
	SuccessLogin              = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "登录成功", HttpCode: Ok}
	SuccessGetCustomerFlights = ApiStatus{StatusName: "GET_CUSTOMER_FLIGHTS", Description: "获取已购航班成功", HttpCode: Ok}
)

func (userService *UserService) checkLength(value string, minLength, maxLength int) bool {
	length := len([]rune(value))
	return length >= minLength && length <= maxLength
}

func (userService *UserService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	limits := userService.config.Limits
	if !userService.checkLength(req.Username, limits.UsernameLengthMin, limits.UsernameLengthMax) ||
		!userService.checkLength(req.Password, limits.PasswordLengthMin, limits.PasswordLengthMax) {
		return NewApiResponse[ResponseUserLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserLogin](userService.logger, func() (*operation.User, error) {
		return userService.userOperation.Authenticate(req.Username, req.Password)
	})
	if res != nil {
		return res
	}

	role, res := CallDBFuncAndCheckError[operation.UserRole, ResponseUserLogin](userService.logger, func() (*operation.UserRole, error) {
		return userService.userOperation.GetUserRole(user)
	})
	if res != nil {
		return res
	}

	token := NewClaims(userService.config.JWT, user, role)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
		User:  user,
		Role:  role.RoleName,
		Token: token.GenerateKey(),
	})
}

// GetCustomerFlights 只有客户角色的令牌可以查询
func (userService *UserService) GetCustomerFlights(req *RequestCustomerFlights) *ApiResponse[ResponseFlights] {
	if req.Role != operation.RoleCustomer.String() {
		return NewApiResponse[ResponseFlights](&ErrWrongLoginToken, Unsatisfied, nil)
	}

	customers, res := CallDBListFuncAndCheckError[operation.Customer, ResponseFlights](userService.logger, func() ([]*operation.Customer, error) {
		return userService.customers.GetByColumnValue(operation.CustomerColumnUserId, req.Uid)
	})
	if res != nil {
		return res
	}
	if len(customers) == 0 {
		return NewApiResponse[ResponseFlights](&ErrCustomerNotFound, Unsatisfied, nil)
	}

	flights, res := CallDBListFuncAndCheckError[operation.Flight, ResponseFlights](userService.logger, func() ([]*operation.Flight, error) {
		return userService.query.GetFlightsByCustomer(customers[0].ID)
	})
	if res != nil {
		return res
	}
	data := ResponseFlights(flights)
	return NewApiResponse(&SuccessGetCustomerFlights, Unsatisfied, &data)
}
