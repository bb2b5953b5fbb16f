// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and EASYRIDER_* environment variables override file values.
// Configuration selects reports, output format, log level and the metrics
// textfile; it never changes how records are validated.
package config
