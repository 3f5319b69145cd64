package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophworker/internal/flagx"
	"github.com/dmitrijs2005/gophworker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as
// a string like "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	AccessToken        string          `json:"access_token"`
	SecretKey          string          `json:"secret_key"`
	Email              string          `json:"email"`
	WorkerDataFile     string          `json:"worker_data_file"`
	UserDataFile       string          `json:"user_data_file"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Empty JSON values keep what cfg already holds. Read or
// unmarshal errors panic.
func parseJson(cfg *Config, osArgs []string) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags(osArgs)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setIfNotEmpty(&cfg.AccessToken, jc.AccessToken)
	setIfNotEmpty(&cfg.SecretKey, jc.SecretKey)
	setIfNotEmpty(&cfg.Email, jc.Email)
	setIfNotEmpty(&cfg.WorkerDataFile, jc.WorkerDataFile)
	setIfNotEmpty(&cfg.UserDataFile, jc.UserDataFile)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
