package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Artifacts   ArtifactsConfig   `yaml:"artifacts"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	APIKey              string  `yaml:"api_key"`
	Model               string  `yaml:"model"`
	Temperature         float32 `yaml:"temperature"`
	PollIntervalSeconds int     `yaml:"poll_interval_seconds"`
	PollTimeoutSeconds  int     `yaml:"poll_timeout_seconds"`
}

// PollInterval returns the readiness poll cadence.
func (g GeminiConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalSeconds) * time.Second
}

// PollTimeout returns the overall readiness deadline, zero meaning none.
func (g GeminiConfig) PollTimeout() time.Duration {
	return time.Duration(g.PollTimeoutSeconds) * time.Second
}

type PathsConfig struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	Archived     string `yaml:"archived"`
	Instructions string `yaml:"instructions"`
}

type ArtifactsConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file and applies validation and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (or set GEMINI_API_KEY)")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Instructions == "" {
		return fmt.Errorf("paths.instructions is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.1
	}
	if c.Gemini.PollIntervalSeconds == 0 {
		c.Gemini.PollIntervalSeconds = 5
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
