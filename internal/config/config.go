package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultRecordsDir  = "records"
	DefaultTimeScalar  = 1.0
	DefaultStoragePath = "astroscore.db"
	DefaultLogLevel    = "info"
)

// Config is the top-level configuration for the astroscore evaluator.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Storage  StorageConfig  `yaml:"storage"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig holds derivation and scoring settings.
type PipelineConfig struct {
	// RecordsDir is the directory watched for observation record files
	// (*.yaml / *.yml).
	RecordsDir string `yaml:"records_dir"`

	// Time is the time scalar in seconds handed to every derivation call.
	Time float64 `yaml:"time"`

	// TablesFile optionally overrides the built-in reference/weight tables.
	// Loaded once at startup; empty means use the built-ins.
	TablesFile string `yaml:"tables_file"`
}

// StorageConfig configures the run-history backend.
type StorageConfig struct {
	// Path is the filesystem path for the SQLite database file.
	// Empty disables run history.
	Path string `yaml:"path"`
}

// ExportConfig configures the Prometheus textfile export.
type ExportConfig struct {
	// Textfile is the path the latest run is written to in Prometheus text
	// exposition format, for a node-exporter textfile collector to pick up.
	// Empty disables the export.
	Textfile string `yaml:"textfile"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			RecordsDir: DefaultRecordsDir,
			Time:       DefaultTimeScalar,
		},
		Storage: StorageConfig{
			Path: DefaultStoragePath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Pipeline.RecordsDir == "" {
		return fmt.Errorf("pipeline.records_dir is required")
	}
	if cfg.Pipeline.Time < 0 {
		return fmt.Errorf("pipeline.time must not be negative")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}
