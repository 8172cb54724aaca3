// Package global
package global

import (
	"flag"
)

var (
	DebugMode          = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath     = flag.String("config", "./config.json", "Path to configuration file")
	ResetTestDatabase  = flag.Bool("reset_test_database", false, "Reset all tables and load the test fixture, then exit")
	DropAllTables      = flag.Bool("drop_all_tables", false, "Drop every table, then exit")
	CreateProcedures   = flag.Bool("create_procedures", false, "Create the stored procedures from general.procedures_file, then exit")
	SkipAutoMigrations = flag.Bool("skip_auto_migrations", false, "Do not create missing tables on startup")
)

const (
	AppVersion    = "0.3.0"
	ConfigVersion = "0.3.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	ProcedureDelimiter = "|||"
)
