// Package config loads runtime configuration for the blog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the blog API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database
//	-s string   credential store: sqlite, file or memory
//	-f string   path of the credentials file (store "file")
//	-l string   log level: debug, info, warn, error
//	-p string   profile fetch failure policy: keep or drop
//
// # JSON schema
//
// Durations go through timex.Duration, so they can be strings like "10s" or
// integer nanoseconds. Fields left out of the file keep their defaults:
//
//	{
//	  "base_url": "http://localhost:8080/",
//	  "request_timeout": "10s",
//	  "auth_header": "KZ_AUTH",
//	  "database_path": "/home/me/.config/blogclient/client.db",
//	  "credential_store": "sqlite",
//	  "credentials_file": "/home/me/.config/blogclient/credentials.json",
//	  "log_level": "info",
//	  "fetch_failure_policy": "keep"
//	}
//
// The package does not read environment variables.
package config
