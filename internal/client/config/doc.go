// Package config loads runtime configuration for the clientdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file given with -c/--config: JSON, or YAML when the
//     name ends in .yaml/.yml (see LoadFile).
//  3. Command-line flags (see BindFlags), which override earlier values.
//
// # File schema
//
// Durations are strings like "300ms" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:3000/api/clients",
//	  "request_timeout": "10s",
//	  "search_debounce": "300ms",
//	  "time_layout": "02.01.2006, 15:04:05",
//	  "time_zone": "Europe/Moscow",
//	  "log_file": "clientdesk.log",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Note: This package does not read environment variables; use the file or
// flags to configure values.
package config
