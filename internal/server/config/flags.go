package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret
//	-x string   worker id prefix
//	-w int      worker id zero-pad width
//	-n int      worker id allocation attempts per request
//	-l string   log level
//	-t int      request timeout, seconds (0 = none)
//
// Only these flags are parsed; -c/-config belongs to parseJson.
func parseFlags(config *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, []string{"-a", "-d", "-s", "-x", "-w", "-n", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.WorkerIDPrefix, "x", config.WorkerIDPrefix, "worker id prefix")
	fs.IntVar(&config.WorkerIDWidth, "w", config.WorkerIDWidth, "worker id zero-pad width")
	fs.IntVar(&config.AllocationAttempts, "n", config.AllocationAttempts, "worker id allocation attempts")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
