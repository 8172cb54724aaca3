// Package service
package service

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"time"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid      uint   `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	config   *c.JWTConfig
	jwt.RegisteredClaims
}

func NewClaims(config *c.JWTConfig, user *operation.User, role *operation.UserRole) *Claims {
	return &Claims{
		Uid:      user.ID,
		Username: user.Username,
		Role:     role.RoleName,
		config:   config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.ExpiresDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "参数不正确", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "缺少参数", BadRequest}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "服务器内部错误", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "指定用户不存在", NotFound}
	ErrCustomerNotFound      = ApiStatus{"CUSTOMER_NOT_FOUND", "客户不存在", NotFound}
	ErrAirlineNotFound       = ApiStatus{"AIRLINE_NOT_FOUND", "航空公司不存在", NotFound}
	ErrFlightNotFound        = ApiStatus{"FLIGHT_NOT_FOUND", "航班不存在", NotFound}
	ErrUsernameOrPassword    = ApiStatus{"WRONG_USERNAME_OR_PASSWORD", "用户名或密码错误", Unauthorized}
	ErrWrongLoginToken       = ApiStatus{"WRONG_LOGIN_TOKEN", "登录令牌与请求的角色不符", PermissionDenied}
	ErrRateLimitExceeded     = ApiStatus{"RATE_LIMIT_EXCEEDED", "请求次数过多, 请稍后再试", TooManyRequests}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "缺少JWT令牌或者令牌格式错误", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "无效或过期的JWT令牌", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "未知的JWT解析错误", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewApiResponse[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrCustomerNotFound):
		return nil, NewApiResponse[T](&ErrCustomerNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAirlineNotFound):
		return nil, NewApiResponse[T](&ErrAirlineNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrWrongPassword):
		return nil, NewApiResponse[T](&ErrUsernameOrPassword, Unsatisfied, nil)
	case err != nil:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}

// CallDBListFuncAndCheckError 列表查询, 空结果不是错误
func CallDBListFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() ([]*R, error)) ([]*R, *ApiResponse[T]) {
	result, err := fc()
	if err != nil {
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return result, nil
}
