package base

import (
	"encoding/json"
	"errors"
	"fmt"
	. "github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/utils"
	"os"
)

func readConfig(logger log.LoggerInterface, path string) (*Config, *ValidResult) {
	config := DefaultConfig()

	// 读取配置文件
	if bytes, err := os.ReadFile(path); err != nil {
		// 如果配置文件不存在，创建默认配置
		if err := saveConfig(path, config); err != nil {
			return nil, ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, ValidFail(fmt.Errorf("the configuration file %s does not exist and has been created. Please try again after editing the configuration file", path))
	} else if err := json.Unmarshal(bytes, config); err != nil {
		// 解析JSON配置
		return nil, ValidFailWith(errors.New("the configuration file does not contain valid JSON"), err)
	} else if result := config.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return config, ValidPass()
}

func saveConfig(path string, config *Config) error {
	if writer, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, global.DefaultFilePermissions); err != nil {
		return err
	} else if data, err := json.MarshalIndent(config, "", "\t"); err != nil {
		_ = writer.Close()
		return err
	} else if _, err = writer.Write(data); err != nil {
		_ = writer.Close()
		return err
	} else if err := writer.Close(); err != nil {
		return err
	}
	return nil
}

type Manager struct {
	config *utils.CachedValue[Config]
	logger log.LoggerInterface
	path   string
}

func NewManager(logger log.LoggerInterface, path string) *Manager {
	manager := &Manager{
		logger: logger,
		path:   path,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

func (manager *Manager) getConfig() *Config {
	if config, result := readConfig(manager.logger, manager.path); result.IsFail() {
		manager.logger.Fatal(result.Error().Error())
		panic(result.Error())
	} else {
		return config
	}
}

// Load 读取并校验配置, 失败时不会 panic
func (manager *Manager) Load() (*Config, *ValidResult) {
	return readConfig(manager.logger, manager.path)
}

func (manager *Manager) Config() *Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
