package database

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/half-nothing/simple-flights/internal/interfaces/config"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

// recordLogger 记录 DEBUG 和 CRITICAL 日志, 其余级别丢弃
type recordLogger struct {
	lock      sync.Mutex
	debugs    []string
	criticals []string
}

func (l *recordLogger) Init(bool) {}
func (l *recordLogger) ShutdownCallback() global.Callable { return nil }
func (l *recordLogger) Info(string, ...interface{}) {}
func (l *recordLogger) InfoF(string, ...interface{}) {}
func (l *recordLogger) Warn(string, ...interface{}) {}
func (l *recordLogger) WarnF(string, ...interface{}) {}
func (l *recordLogger) Error(string, ...interface{}) {}
func (l *recordLogger) ErrorF(string, ...interface{}) {}
func (l *recordLogger) Fatal(string, ...interface{}) {}
func (l *recordLogger) FatalF(string, ...interface{}) {}

func (l *recordLogger) Debug(msg string, _ ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.debugs = append(l.debugs, msg)
}

func (l *recordLogger) DebugF(msg string, v ...interface{}) {
	l.Debug(fmt.Sprintf(msg, v...))
}

func (l *recordLogger) Debugs() []string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]string(nil), l.debugs...)
}

func (l *recordLogger) Critical(msg string, _ ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.criticals = append(l.criticals, msg)
}

func (l *recordLogger) CriticalF(msg string, v ...interface{}) {
	l.Critical(fmt.Sprintf(msg, v...))
}

func (l *recordLogger) Criticals() []string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]string(nil), l.criticals...)
}

// fixedNow 测试数据中航班起飞前四小时
var fixedNow = time.Date(2022, time.January, 30, 12, 0, 0, 0, time.UTC)

type testDatabase struct {
	repository *Repository
	operations *operation.DatabaseOperations
	logger     *recordLogger
}

func setupTestDatabase(t *testing.T) *testDatabase {
	t.Helper()
	logger := &recordLogger{}
	dsn := config.SQLiteDSN(filepath.Join(t.TempDir(), "flights.db"))
	db, err := OpenDatabase(logger, sqlite.Open(dsn), false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repository := NewRepository(db, 5*time.Second, logger)
	repository.SetClock(func() time.Time { return fixedNow })
	operations := NewDatabaseOperations(repository, bcrypt.MinCost)
	require.NoError(t, operations.FixtureOperation().Migrate())
	return &testDatabase{repository: repository, operations: operations, logger: logger}
}

func setupFixtureDatabase(t *testing.T) *testDatabase {
	t.Helper()
	database := setupTestDatabase(t)
	require.NoError(t, database.operations.FixtureOperation().ResetTestDatabase())
	return database
}

func flightIds(flights []*operation.Flight) []uint {
	ids := make([]uint, 0, len(flights))
	for _, flight := range flights {
		ids = append(ids, flight.ID)
	}
	return ids
}
