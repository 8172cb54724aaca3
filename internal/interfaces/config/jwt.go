// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

const minSecretLength = 32

type JWTConfig struct {
	Secret          string        `json:"secret"`
	Issuer          string        `json:"issuer"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		Issuer:      "simple-flights",
		ExpiresTime: "15m",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else if duration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.jwt.expires_time, value must larger than 0"))
	} else {
		config.ExpiresDuration = duration
	}

	if config.Secret == "" {
		// 未配置密钥时每次启动随机生成, 重启后旧令牌全部失效
		config.Secret = randstr.String(64)
		logger.Warn("http_server.jwt.secret is empty, a random secret is generated for this run")
	} else if len(config.Secret) < minSecretLength {
		logger.WarnF("http_server.jwt.secret is shorter than %d characters", minSecretLength)
	}

	if config.Issuer == "" {
		config.Issuer = "simple-flights"
	}
	return ValidPass()
}
