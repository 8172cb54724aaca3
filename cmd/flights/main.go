package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/base"
	"github.com/half-nothing/simple-flights/internal/database"
	"github.com/half-nothing/simple-flights/internal/http_server"
	"github.com/half-nothing/simple-flights/internal/interfaces"
	"github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

// runMaintenance 执行命令行指定的维护任务, 返回true表示执行过任务
func runMaintenance(logger log.LoggerInterface, config *config.Config, fixture operation.FixtureOperationInterface) (bool, error) {
	executed := false
	if *global.DropAllTables {
		executed = true
		if err := fixture.DropAllTables(); err != nil {
			return executed, err
		}
	}
	if *global.ResetTestDatabase {
		executed = true
		if *global.DropAllTables {
			if err := fixture.Migrate(); err != nil {
				return executed, err
			}
		}
		if err := fixture.ResetTestDatabase(); err != nil {
			return executed, err
		}
	}
	if *global.CreateProcedures {
		executed = true
		if err := fixture.CreateAllStoredProcedures(config.General.ProceduresFile); err != nil {
			return executed, err
		}
	}
	if executed {
		logger.Info("Maintenance tasks finished")
	}
	return executed, nil
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Application initializing, version %s", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger, *global.ConfigFilePath)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing database, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	if executed, err := runMaintenance(logger, config, databaseOperation.FixtureOperation()); err != nil {
		logger.FatalF("Error occurred while running maintenance tasks, details: %v", err)
		return
	} else if executed {
		return
	}

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	if !config.HttpServer.Enabled {
		logger.Warn("Http server is disabled, nothing left to do")
		return
	}

	http_server.StartHttpServer(applicationContent)
}
