package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// BatchWorkers is the number of files extracted in parallel by a batch
	// run; 1 keeps the batch sequential.
	BatchWorkers int `yaml:"batch_workers"`
	// PreviewLength bounds Summarize when the caller passes no length.
	PreviewLength int `yaml:"preview_length"`
	// ExtraFormats lists optional extractors to register on top of the
	// built-in set: "txt", "epub", "html".
	ExtraFormats []string `yaml:"extra_formats"`
}

func Default() *Config {
	return &Config{
		BatchWorkers:  1,
		PreviewLength: 500,
	}
}

// Load reads configuration from TEXTORA_* environment variables. Unset
// variables keep their defaults.
func Load() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("TEXTORA_BATCH_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TEXTORA_BATCH_WORKERS: %w", err)
		}
		cfg.BatchWorkers = workers
	}
	if v := os.Getenv("TEXTORA_PREVIEW_LENGTH"); v != "" {
		length, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TEXTORA_PREVIEW_LENGTH: %w", err)
		}
		cfg.PreviewLength = length
	}
	if v := os.Getenv("TEXTORA_EXTRA_FORMATS"); v != "" {
		for _, format := range strings.Split(v, ",") {
			if format = strings.TrimSpace(format); format != "" {
				cfg.ExtraFormats = append(cfg.ExtraFormats, format)
			}
		}
	}

	return cfg, nil
}

// LoadFile reads configuration from a YAML file. Fields absent from the file
// keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.BatchWorkers < 1 {
		cfg.BatchWorkers = 1
	}
	if cfg.PreviewLength < 1 {
		cfg.PreviewLength = Default().PreviewLength
	}

	return cfg, nil
}
