// Package config loads runtime configuration for the expenzo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the expenzo API
//	-p string   path of the local session database
//	-t int      request timeout (seconds)
//	-w int      delay after logout before the login prompt (milliseconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "session_db_path": "session.db",
//	  "request_timeout": "10s",
//	  "logout_delay": "1s"
//	}
package config
