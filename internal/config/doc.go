// Package config loads the astroscore configuration file (config.yaml).
//
// Top-level types:
//   - Config{Pipeline, Storage, Export, Log} — full config tree parsed
//     from YAML
//   - PipelineConfig — records_dir, time scalar, optional tables_file
//     override for the reference/weight tables
//   - StorageConfig — sqlite database path for run history
//   - ExportConfig — optional Prometheus textfile output path
//   - LogConfig — slog level (debug|info|warn|error)
//
// Load(path) reads the YAML file, applies defaults, then validates required
// fields and enums. The reference/weight tables named by tables_file are
// loaded once at startup and fixed for the process lifetime; there is
// deliberately no hot-reload of scoring tables.
package config
