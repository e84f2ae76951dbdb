package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/dmitrijs2005/playhub-library/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (empty disables /metrics)
//	-d string   PostgreSQL DSN, overrides the individual database settings
//	-l string   log level
//	-prefix string         service name used in logs
//	-max-conns int         database pool size
//	-page-size int         default GetUserLibrary page size
//	-max-page-size int     upper bound for GetUserLibrary page size
//	-shutdown-timeout dur  grace period on shutdown (e.g., "10s")
//
// os.Args is first filtered with flagx.FilterArgs so that the JSON config
// flags do not collide with this set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-d", "-l", "-prefix", "-max-conns", "-page-size", "-max-page-size", "-shutdown-timeout",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LibraryPrefix, "prefix", config.LibraryPrefix, "service name used in logs")
	fs.IntVar(&config.DatabaseMaxConns, "max-conns", config.DatabaseMaxConns, "database pool size")

	fs.Var((*int32Value)(&config.DefaultPageSize), "page-size", "default page size")
	fs.Var((*int32Value)(&config.MaxPageSize), "max-page-size", "max page size")

	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", config.ShutdownTimeout, "shutdown grace period")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// int32Value is a flag.Value that rejects numbers outside the int32 range.
type int32Value int32

func (v *int32Value) String() string {
	if v == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*v), 10)
}

func (v *int32Value) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	*v = int32Value(n)
	return nil
}
