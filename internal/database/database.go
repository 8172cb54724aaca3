package database

import (
	"context"
	"errors"
	"fmt"
	c "github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/half-nothing/simple-flights/internal/interfaces/log"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"time"
)

type DBCloseCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, db: db}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	dc.logger.Info("Closing database connection")
	return db.Close()
}

// gormLogWriter 将gorm的日志转发到应用日志的DEBUG级别
type gormLogWriter struct {
	logger log.LoggerInterface
}

func (writer *gormLogWriter) Printf(format string, v ...interface{}) {
	writer.logger.DebugF(format, v...)
}

func newGormLogger(logger log.LoggerInterface, debug bool) gormlogger.Interface {
	level := gormlogger.Silent
	if debug {
		level = gormlogger.Info
	}
	return gormlogger.New(&gormLogWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenDatabase 打开数据库连接但不做迁移, TranslateError 用于把唯一约束和外键错误转换为 gorm 的统一错误
func OpenDatabase(logger log.LoggerInterface, dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	if dialector == nil {
		return nil, errors.New("unsupported database dialector")
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger, debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}
	return db, nil
}

func NewDatabaseOperations(repository *Repository, bcryptCost int) *operation.DatabaseOperations {
	entities := &operation.EntityOperations{
		Countries:        NewEntityOperation[operation.Country](repository),
		UserRoles:        NewEntityOperation[operation.UserRole](repository),
		Users:            NewEntityOperation[operation.User](repository),
		Administrators:   NewEntityOperation[operation.Administrator](repository),
		AirlineCompanies: NewEntityOperation[operation.AirlineCompany](repository),
		Customers:        NewEntityOperation[operation.Customer](repository),
		Flights:          NewEntityOperation[operation.Flight](repository),
		Tickets:          NewEntityOperation[operation.Ticket](repository),
	}
	userOperation := NewUserOperation(repository, bcryptCost)
	return operation.NewDatabaseOperations(
		entities,
		NewQueryOperation(repository),
		NewProcedureOperation(repository),
		NewFixtureOperation(repository, entities, userOperation),
		userOperation,
	)
}

func ConnectDatabase(
	logger log.LoggerInterface,
	config *c.Config,
	debug bool,
) (global.Callable, *operation.DatabaseOperations, error) {
	db, err := OpenDatabase(logger, config.Database.GetConnection(logger), debug)
	if err != nil {
		return nil, nil, err
	}

	closeCallback := NewDBCloseCallback(logger, db)

	repository := NewRepository(db, config.Database.QueryDuration, logger)
	operations := NewDatabaseOperations(repository, config.General.BcryptCost)

	if *global.SkipAutoMigrations {
		logger.Warn("Auto migrations skipped")
	} else if err := operations.FixtureOperation().Migrate(); err != nil {
		_ = closeCallback.Invoke(context.Background())
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := float32(config.Database.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                              // 空闲连接约为最大连接的20%
	if config.Database.DBType == c.SQLite {
		maxOpenConnections = 1
		maxIdleConnections = 1
	}

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err := dbPool.Ping(); err != nil {
		_ = closeCallback.Invoke(context.Background())
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}

	logger.Info("Database initialized and connection established")
	return closeCallback, operations, nil
}
