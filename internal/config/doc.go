// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, a .env file and
// environment variables). It provides type-safe access to the settings the
// gateway needs while keeping configuration details out of the handlers.
package config
