// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string            `json:"config_version"`
	General       *GeneralConfig    `json:"general"`
	Database      *DatabaseConfig   `json:"database"`
	HttpServer    *HttpServerConfig `json:"http_server"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		General:       defaultGeneralConfig(),
		Database:      defaultDatabaseConfig(),
		HttpServer:    defaultHttpServerConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else {
		switch ConfVersion.checkVersion(version) {
		case MajorUnmatch, MinorUnmatch:
			return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
		case PatchUnmatch:
			// 补丁版本不同时字段兼容
			logger.WarnF("Config version %s differs from %s in patch level", version.String(), ConfVersion.String())
		default:
		}
	}
	if c.General == nil || c.Database == nil || c.HttpServer == nil {
		return ValidFail(errors.New("config sections general, database and http_server are required"))
	}
	if result := c.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
