// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	UsernameLengthMin int           `json:"username_length_min"`
	UsernameLengthMax int           `json:"username_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	MaxWindowHours    int           `json:"max_window_hours"` // 时间窗口查询允许的最大小时数
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         60,
		RateLimitWindow:   "1m",
		UsernameLengthMin: 1,
		UsernameLengthMax: 64,
		PasswordLengthMin: 3,
		PasswordLengthMax: 64,
		MaxWindowHours:    24 * 7,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else if duration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit_window, value must larger than 0"))
	} else {
		config.RateLimitDuration = duration
	}

	if config.RateLimit <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit, value must larger than 0"))
	}

	if config.UsernameLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_min, value must larger than 0"))
	}
	if config.UsernameLengthMax > 64 {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_max, value must less than 64"))
	}
	if config.UsernameLengthMin > config.UsernameLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_min, value must not exceed http_server.limits.username_length_max"))
	}

	if config.PasswordLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must larger than 0"))
	}
	if config.PasswordLengthMax > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_max, value must less than 128"))
	}
	if config.PasswordLengthMin > config.PasswordLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must not exceed http_server.limits.password_length_max"))
	}

	if config.MaxWindowHours <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.max_window_hours, value must larger than 0"))
	}
	return ValidPass()
}
