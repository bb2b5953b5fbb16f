package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvConfigPath  = "EASYRIDER_CONFIG"
	EnvReports     = "EASYRIDER_REPORTS"
	EnvFormat      = "EASYRIDER_FORMAT"
	EnvLogLevel    = "EASYRIDER_LOG_LEVEL"
	EnvMetricsFile = "EASYRIDER_METRICS_FILE"
)

var defaultPaths = []string{"config.yml", "./easyrider/config.yml"}

// LoadAppConfig loads .env, the YAML file and environment overrides, then validates.
// A missing file at the default locations yields the defaults; a missing file named by
// EASYRIDER_CONFIG is an error.
func LoadAppConfig() (AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	data, err := readConfigFile()
	if err != nil {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration struct tags
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func readConfigFile() ([]byte, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
		return data, nil
	}
	for _, p := range defaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	}
	return nil, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvReports); v != "" {
		var reports []string
		for _, r := range strings.Split(v, ",") {
			r = strings.TrimSpace(strings.ToLower(r))
			if r != "" {
				reports = append(reports, r)
			}
		}
		cfg.Reports = reports
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvMetricsFile); ok {
		cfg.Metrics.Textfile = strings.TrimSpace(v)
	}
}
