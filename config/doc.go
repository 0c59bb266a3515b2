// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure
// including the listen address, API limits (admin token, body size cap, sleep
// bound, readme path), and logging level.
package config
