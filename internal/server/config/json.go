package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophworker/internal/flagx"
	"github.com/dmitrijs2005/gophworker/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrGRPC   *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN        *string         `json:"database_dsn"`
	SecretKey          *string         `json:"secret_key"`
	WorkerIDPrefix     *string         `json:"worker_id_prefix"`
	WorkerIDWidth      *int            `json:"worker_id_width"`
	AllocationAttempts *int            `json:"allocation_attempts"`
	LogLevel           *string         `json:"log_level"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson loads the file named by -c/-config (if any) into config.
// An unreadable file or invalid JSON panics, like a bad flag does.
func parseJson(config *Config, osArgs []string) {
	jsonConfigFile := flagx.JsonConfigFlags(osArgs)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.WorkerIDPrefix, c.WorkerIDPrefix)
	setIf(&config.WorkerIDWidth, c.WorkerIDWidth)
	setIf(&config.AllocationAttempts, c.AllocationAttempts)
	setIf(&config.LogLevel, c.LogLevel)
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
