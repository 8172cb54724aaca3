// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
)

type GeneralConfig struct {
	BcryptCost     int    `json:"bcrypt_cost"`
	ProceduresFile string `json:"procedures_file"` // 存储过程定义文件, 语句之间以 ||| 分隔
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		BcryptCost:     12,
		ProceduresFile: "./sql/stored_procedures.sql",
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	return ValidPass()
}
