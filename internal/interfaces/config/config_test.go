package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Init(bool) {}
func (nopLogger) ShutdownCallback() global.Callable { return nil }
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) DebugF(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) InfoF(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) WarnF(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) ErrorF(string, ...interface{}) {}
func (nopLogger) Critical(string, ...interface{}) {}
func (nopLogger) CriticalF(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}
func (nopLogger) FatalF(string, ...interface{}) {}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	result := config.CheckValid(nopLogger{})
	require.False(t, result.IsFail(), "%v", result.Error())

	assert.Equal(t, SQLite, config.Database.DBType)
	assert.Equal(t, 5*time.Second, config.Database.QueryDuration)
	assert.Equal(t, time.Hour, config.Database.ConnectIdleDuration)
}

func TestConfigVersionMismatch(t *testing.T) {
	config := DefaultConfig()
	config.ConfigVersion = "0.0.1"
	result := config.CheckValid(nopLogger{})
	assert.True(t, result.IsFail())
}

func TestDatabaseConfigCheckValid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(config *DatabaseConfig)
		fail   bool
	}{
		{"default", func(*DatabaseConfig) {}, false},
		{"postgres", func(c *DatabaseConfig) { c.Type = "postgres" }, false},
		{"unknown type", func(c *DatabaseConfig) { c.Type = "oracle" }, true},
		{"empty database", func(c *DatabaseConfig) { c.Database = "" }, true},
		{"bad idle timeout", func(c *DatabaseConfig) { c.ConnectIdleTimeout = "forever" }, true},
		{"zero query timeout", func(c *DatabaseConfig) { c.QueryTimeout = "0s" }, true},
		{"no connections", func(c *DatabaseConfig) { c.ServerMaxConnections = 0 }, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := defaultDatabaseConfig()
			test.modify(config)
			assert.Equal(t, test.fail, config.checkValid(nopLogger{}).IsFail())
		})
	}
}

func TestGetConnectionDialector(t *testing.T) {
	for dbType, name := range map[string]string{"mysql": "mysql", "postgres": "postgres", "sqlite3": "sqlite"} {
		config := defaultDatabaseConfig()
		config.Type = dbType
		require.False(t, config.checkValid(nopLogger{}).IsFail())
		dialector := config.GetConnection(nopLogger{})
		require.NotNil(t, dialector)
		assert.Equal(t, name, dialector.Name())
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "flights.db?_foreign_keys=1", SQLiteDSN("flights.db"))
	assert.Equal(t, "flights.db?cache=shared&_foreign_keys=1", SQLiteDSN("flights.db?cache=shared"))
	assert.Equal(t, "flights.db?_foreign_keys=0", SQLiteDSN("flights.db?_foreign_keys=0"))
}

func TestHttpServerConfigCheckValid(t *testing.T) {
	config := defaultHttpServerConfig()
	config.Enabled = true
	config.JWT.Secret = ""
	require.False(t, config.checkValid(nopLogger{}).IsFail())
	assert.Equal(t, "0.0.0.0:6810", config.Address)
	assert.Len(t, config.JWT.Secret, 64)
	assert.Equal(t, 15*time.Minute, config.JWT.ExpiresDuration)
	assert.Equal(t, time.Minute, config.Limits.RateLimitDuration)

	config.Port = 80
	assert.True(t, config.checkValid(nopLogger{}).IsFail())
}

func TestGeneralConfigBcryptCost(t *testing.T) {
	config := defaultGeneralConfig()
	config.BcryptCost = 2
	assert.True(t, config.checkValid(nopLogger{}).IsFail())
	config.BcryptCost = 4
	assert.False(t, config.checkValid(nopLogger{}).IsFail())
}

func TestConfigPatchVersionTolerated(t *testing.T) {
	config := DefaultConfig()
	version, err := newVersion(config.ConfigVersion)
	require.NoError(t, err)
	version.parts[2]++
	config.ConfigVersion = fmt.Sprintf("%d.%d.%d", version.parts[0], version.parts[1], version.parts[2])
	assert.False(t, config.CheckValid(nopLogger{}).IsFail())

	config.ConfigVersion = "1.x.0"
	assert.True(t, config.CheckValid(nopLogger{}).IsFail())
}

func TestSSLConfigCheckValid(t *testing.T) {
	config := defaultSSLConfig()
	config.EnableHSTS = true
	config.ForceSSL = true
	require.False(t, config.checkValid(nopLogger{}).IsFail())
	assert.False(t, config.ForceSSL)
	assert.Equal(t, 0, config.HstsMaxAge())

	config = defaultSSLConfig()
	config.Enable = true
	assert.True(t, config.checkValid(nopLogger{}).IsFail())

	config.CertFile = filepath.Join(t.TempDir(), "missing.pem")
	config.KeyFile = config.CertFile
	result := config.checkValid(nopLogger{})
	require.True(t, result.IsFail())
	assert.ErrorIs(t, result.Error(), os.ErrNotExist)

	certFile := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0600))
	config.CertFile = certFile
	config.KeyFile = certFile
	config.EnableHSTS = true
	require.False(t, config.checkValid(nopLogger{}).IsFail())
	assert.Equal(t, 5184000, config.HstsMaxAge())
}

func TestJWTConfigCheckValid(t *testing.T) {
	config := defaultJWTConfig()
	config.Issuer = ""
	require.False(t, config.checkValid(nopLogger{}).IsFail())
	assert.Equal(t, "simple-flights", config.Issuer)

	config.ExpiresTime = "-1m"
	assert.True(t, config.checkValid(nopLogger{}).IsFail())
}
