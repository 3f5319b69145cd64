package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the provisioning CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the provisioning gRPC endpoint.
//   - AccessToken: session token sent with CreateWorkerAccount.
//   - SecretKey: when set and AccessToken is empty, an admin token is minted locally.
//   - Email: worker email; prompted for when empty.
//   - WorkerDataFile / UserDataFile: JSON object files with the two payloads.
//   - RequestTimeout: deadline for each call.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	SecretKey          string
	Email              string
	WorkerDataFile     string
	UserDataFile       string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
