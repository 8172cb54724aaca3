// Package interfaces
package interfaces

import (
	. "github.com/half-nothing/simple-flights/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
