// Package config loads runtime configuration for the provisioning CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "",
//	  "secret_key": "",
//	  "email": "worker@example.com",
//	  "worker_data_file": "worker.json",
//	  "user_data_file": "user.json",
//	  "request_timeout": "10s"
//	}
package config
