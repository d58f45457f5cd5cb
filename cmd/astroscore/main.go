package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/astroscore/astroscore/internal/config"
	"github.com/astroscore/astroscore/internal/result"
	"github.com/astroscore/astroscore/internal/runner"
	"github.com/astroscore/astroscore/internal/score"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	recordPath := flag.String("record", "", "evaluate a single record file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	slog.Info("astroscore starting", "config", *configPath)

	// Scoring tables are fixed for the process lifetime: built-ins unless
	// the config names an override file.
	tables := score.Defaults()
	if cfg.Pipeline.TablesFile != "" {
		tables, err = score.Load(cfg.Pipeline.TablesFile)
		if err != nil {
			slog.Error("failed to load tables override", "err", err)
			os.Exit(1)
		}
		slog.Info("tables override loaded",
			"file", cfg.Pipeline.TablesFile, "metrics", len(tables.Reference))
	}

	var store *result.Store
	if cfg.Storage.Path != "" {
		store, err = result.Open(cfg.Storage.Path)
		if err != nil {
			slog.Error("failed to open run history", "err", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	r := runner.New(tables, cfg.Pipeline.Time, store, cfg.Export.Textfile)

	if *recordPath != "" {
		run, err := r.EvaluateFile(*recordPath)
		if err != nil {
			slog.Error("record failed", "path", *recordPath, "err", err)
			os.Exit(1)
		}
		slog.Info("done", "run_id", run.ID, "score", run.Score)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := r.Watch(ctx, cfg.Pipeline.RecordsDir); err != nil {
		slog.Error("watcher stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("astroscore shutting down")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
