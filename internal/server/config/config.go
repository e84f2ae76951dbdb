// Package config handles configuration for the library server, including
// defaults, a JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// EnvPrefix is prepended to every environment variable name read by parseEnv.
const EnvPrefix = "PLAYHUB_LIBRARY_"

// Config holds runtime settings for the library server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - MetricsAddr: bind address for the Prometheus /metrics endpoint; empty disables it.
//   - LibraryPrefix: service name attached to every log record.
//   - LogLevel: debug, info, warn or error.
//   - Database*: PostgreSQL connection parts; DatabaseDSN, when set, wins over them.
//   - DatabaseMaxConns: connection pool size.
//   - DefaultPageSize / MaxPageSize: paging policy for GetUserLibrary.
//   - ShutdownTimeout: grace period for in-flight RPCs on shutdown.
type Config struct {
	EndpointAddrGRPC string        `env:"GRPC_ADDR"`
	MetricsAddr      string        `env:"METRICS_ADDR"`
	LibraryPrefix    string        `env:"PREFIX"`
	LogLevel         string        `env:"LOG_LEVEL"`
	DatabaseHost     string        `env:"DB_HOST"`
	DatabasePort     int           `env:"DB_PORT"`
	DatabaseUser     string        `env:"DB_USER"`
	DatabasePassword string        `env:"DB_PASSWORD"`
	DatabaseName     string        `env:"DB_NAME"`
	DatabaseSSLMode  string        `env:"DB_SSLMODE"`
	DatabaseDSN      string        `env:"DB_DSN"`
	DatabaseMaxConns int           `env:"DB_MAX_CONNS"`
	DefaultPageSize  int32         `env:"DEFAULT_PAGE_SIZE"`
	MaxPageSize      int32         `env:"MAX_PAGE_SIZE"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the database credentials are for local use only.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.LibraryPrefix = "library-prefix"
	c.LogLevel = "info"
	c.DatabaseHost = "postgres"
	c.DatabasePort = 5432
	c.DatabaseUser = "postgres"
	c.DatabasePassword = "postgres"
	c.DatabaseName = "playhub"
	c.DatabaseSSLMode = "disable"
	c.DatabaseDSN = ""
	c.DatabaseMaxConns = 10
	c.DefaultPageSize = 20
	c.MaxPageSize = 100
	c.ShutdownTimeout = 10 * time.Second
}

// DSN returns DatabaseDSN when it is set, otherwise a pgx URL assembled from
// the Database* parts.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:   net.JoinHostPort(c.DatabaseHost, strconv.Itoa(c.DatabasePort)),
		Path:   "/" + c.DatabaseName,
	}
	if c.DatabaseSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DatabaseSSLMode}}.Encode()
	}
	return u.String()
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.EndpointAddrGRPC == "" {
		errs = append(errs, errors.New("grpc address is empty"))
	}
	if c.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("default page size must be positive, got %d", c.DefaultPageSize))
	}
	if c.MaxPageSize < c.DefaultPageSize {
		errs = append(errs, fmt.Errorf("max page size %d is below default page size %d", c.MaxPageSize, c.DefaultPageSize))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must not be negative, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
