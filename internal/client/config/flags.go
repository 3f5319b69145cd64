package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the provisioning server
//	-k string   session access token
//	-s string   secret key used to mint an admin token locally
//	-e string   worker email
//	-w string   path to the worker payload JSON file
//	-u string   path to the user payload JSON file
//	-t int      request timeout in seconds
//
// Note: The function filters args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config, osArgs []string) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(osArgs, []string{"-a", "-k", "-s", "-e", "-w", "-u", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "k", cfg.AccessToken, "session access token")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key to mint an admin token")
	fs.StringVar(&cfg.Email, "e", cfg.Email, "worker email")
	fs.StringVar(&cfg.WorkerDataFile, "w", cfg.WorkerDataFile, "worker payload JSON file")
	fs.StringVar(&cfg.UserDataFile, "u", cfg.UserDataFile, "user payload JSON file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
