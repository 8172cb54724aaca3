// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"os"
)

type SSLConfig struct {
	Enable          bool   `json:"enable"`
	EnableHSTS      bool   `json:"enable_hsts"`
	ForceSSL        bool   `json:"force_ssl"`
	HstsExpiredTime int    `json:"hsts_expired_time"`
	IncludeDomain   bool   `json:"include_domain"`
	CertFile        string `json:"cert_file"`
	KeyFile         string `json:"key_file"`
}

func defaultSSLConfig() *SSLConfig {
	return &SSLConfig{
		Enable:          false,
		EnableHSTS:      false,
		ForceSSL:        false,
		HstsExpiredTime: 5184000,
		IncludeDomain:   false,
		CertFile:        "",
		KeyFile:         "",
	}
}

// HstsMaxAge 未启用HSTS时返回0, echo 不会输出 Strict-Transport-Security
func (config *SSLConfig) HstsMaxAge() int {
	if !config.Enable || !config.EnableHSTS {
		return 0
	}
	return config.HstsExpiredTime
}

func (config *SSLConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enable {
		if config.EnableHSTS || config.ForceSSL {
			logger.Warn("ssl is disabled, enable_hsts and force_ssl are ignored")
			config.EnableHSTS = false
			config.ForceSSL = false
		}
		return ValidPass()
	}

	if config.CertFile == "" || config.KeyFile == "" {
		return ValidFail(errors.New("invalid json field http_server.ssl, both cert_file and key_file are required when ssl is enabled"))
	}
	for _, file := range []string{config.CertFile, config.KeyFile} {
		if _, err := os.Stat(file); err != nil {
			return ValidFailWith(fmt.Errorf("ssl file %s is not readable", file), err)
		}
	}

	if config.EnableHSTS && config.HstsExpiredTime <= 0 {
		return ValidFail(errors.New("invalid json field http_server.ssl.hsts_expired_time, value must larger than 0"))
	}
	return ValidPass()
}
