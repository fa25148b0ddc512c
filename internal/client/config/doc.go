// Package config loads runtime configuration for the journal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local sqlite database file
//	-i int      reachability probe interval (seconds)
//	-l int      page size for server fetches
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "database_path": "gamelog.db",
//	  "request_timeout": "10s",
//	  "probe_interval": "3s",
//	  "probe_timeout": "2s",
//	  "page_limit": 25
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
