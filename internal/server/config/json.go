package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/playhub-library/internal/flagx"
	"github.com/dmitrijs2005/playhub-library/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// ShutdownTimeout uses timex.Duration, which accepts both strings such as
// "5s" and integer nanoseconds.
//
// Only keys present in the file override the current values.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	MetricsAddr      *string         `json:"metrics_addr"`
	LibraryPrefix    string          `json:"library_prefix"`
	LogLevel         string          `json:"log_level"`
	DatabaseHost     string          `json:"database_host"`
	DatabasePort     int             `json:"database_port"`
	DatabaseUser     string          `json:"database_user"`
	DatabasePassword string          `json:"database_password"`
	DatabaseName     string          `json:"database_name"`
	DatabaseSSLMode  string          `json:"database_sslmode"`
	DatabaseDSN      string          `json:"database_dsn"`
	DatabaseMaxConns int             `json:"database_max_conns"`
	DefaultPageSize  int32           `json:"default_page_size"`
	MaxPageSize      int32           `json:"max_page_size"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	setString(&config.LibraryPrefix, c.LibraryPrefix)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.DatabaseHost, c.DatabaseHost)
	if c.DatabasePort != 0 {
		config.DatabasePort = c.DatabasePort
	}
	setString(&config.DatabaseUser, c.DatabaseUser)
	setString(&config.DatabasePassword, c.DatabasePassword)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.DatabaseSSLMode, c.DatabaseSSLMode)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if c.DatabaseMaxConns != 0 {
		config.DatabaseMaxConns = c.DatabaseMaxConns
	}
	if c.DefaultPageSize != 0 {
		config.DefaultPageSize = c.DefaultPageSize
	}
	if c.MaxPageSize != 0 {
		config.MaxPageSize = c.MaxPageSize
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
