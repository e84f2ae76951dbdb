package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc": "www.example:9000",
		"metrics_addr":       "",
		"library_prefix":     "playhub-library",
		"log_level":          "warn",
		"database_host":      "db",
		"database_port":      6543,
		"database_user":      "lib",
		"database_password":  "pw",
		"database_name":      "library",
		"database_sslmode":   "require",
		"database_max_conns": 3,
		"default_page_size":  15,
		"max_page_size":      30,
		"shutdown_timeout":   "2s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := defaultConfig()
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "", cfg.MetricsAddr)
		assert.Equal(t, "playhub-library", cfg.LibraryPrefix)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "db", cfg.DatabaseHost)
		assert.Equal(t, 6543, cfg.DatabasePort)
		assert.Equal(t, "lib", cfg.DatabaseUser)
		assert.Equal(t, "pw", cfg.DatabasePassword)
		assert.Equal(t, "library", cfg.DatabaseName)
		assert.Equal(t, "require", cfg.DatabaseSSLMode)
		assert.Equal(t, 3, cfg.DatabaseMaxConns)
		assert.Equal(t, int32(15), cfg.DefaultPageSize)
		assert.Equal(t, int32(30), cfg.MaxPageSize)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("short flag and partial file keep other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_dsn": "postgres://x/y",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := defaultConfig()
		parseJson(cfg)

		assert.Equal(t, "postgres://x/y", cfg.DatabaseDSN)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := defaultConfig()
		parseJson(cfg)

		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "missing.json")}
		assert.Panics(t, func() { parseJson(defaultConfig()) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		assert.Panics(t, func() { parseJson(defaultConfig()) })
	})
}
