package store

import (
	"time"

	"seekdomains/internal/platform/config"
)

// Driver names a backend in configuration
type Driver string

// Supported drivers
const (
	DriverPostgres Driver = "pg"
	DriverSQLite   Driver = "sqlite"
)

// Dialect names the SQL flavor a backend speaks
type Dialect string

// Supported dialects
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Config aggregates backend configuration; only the section matching Driver is read
type Config struct {
	AppName string
	Driver  Driver

	PG     PGConfig
	SQLite SQLiteConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// Guard/boot knobs; zero means defaults (20 attempts, 3s per ping)
	ConnectRetries int
	PingTimeout    time.Duration
}

// SQLiteConfig configures the single-file backend
type SQLiteConfig struct {
	Path          string
	BusyTimeoutMs int
	LogSQL        bool
	SlowQueryMs   int
}

// FromConfig reads STORE_DRIVER and the matching SERVICE_PGSQL_ or SERVICE_SQLITE_ section
func FromConfig(root config.Conf) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	lite := root.Prefix("SERVICE_SQLITE_")
	c := Config{
		AppName: root.MayString("STORE_APP_NAME", "seekdomains"),
		Driver:  Driver(root.MayEnum("STORE_DRIVER", string(DriverSQLite), string(DriverPostgres), string(DriverSQLite))),
	}
	switch c.Driver {
	case DriverPostgres:
		c.PG = PGConfig{
			URL:         pg.MustString("DBURL"),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		}
	default:
		c.SQLite = SQLiteConfig{
			Path:          lite.MayString("PATH", "available_domains.db"),
			BusyTimeoutMs: lite.MayInt("BUSY_TIMEOUT_MS", 5000),
			SlowQueryMs:   lite.MayInt("SLOW_MS", 500),
			LogSQL:        lite.MayBool("LOG_SQL", false),
		}
	}
	return c
}
