package config

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig contains metrics export configuration
type MetricsConfig struct {
	// Textfile is the Prometheus textfile written after a run; empty disables it
	Textfile string `yaml:"textfile" validate:"omitempty,filepath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Reports []string      `yaml:"reports" validate:"required,min=1,unique,dive,oneof=validation lines stops arrival on_demand start_finish"`
	Format  string        `yaml:"format" validate:"oneof=text json yaml"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	return AppConfig{
		Reports: []string{"validation", "lines", "stops", "arrival", "on_demand"},
		Format:  "text",
		Log:     LogConfig{Level: "warn"},
	}
}
