package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RequestPath string // .hcl request file or directory
	OutputDir   string // empty means report-only, nothing is written

	LogFormat     string
	LogLevel      string
	MaxIterations int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RequestPath == "" {
		return nil, errors.New("RequestPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxIterations < 0 {
		return nil, errors.New("MaxIterations must not be negative")
	}

	return &cfg, nil
}
