package runner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/astroscore/astroscore/internal/derive"
	"github.com/astroscore/astroscore/internal/export"
	"github.com/astroscore/astroscore/internal/result"
	"github.com/astroscore/astroscore/internal/score"
)

// Run is the outcome of one pipeline invocation.
type Run struct {
	ID      string
	Source  string
	Score   float64
	Metrics derive.Mapping
	At      time.Time
}

// Runner evaluates observation record files against a fixed set of tables.
type Runner struct {
	tables   score.Tables
	timeVal  float64
	store    *result.Store // nil disables run history
	textfile string        // empty disables the export
	now      func() time.Time
}

// New creates a Runner. store may be nil and textfile may be empty; both
// features are then skipped.
func New(tables score.Tables, timeVal float64, store *result.Store, textfile string) *Runner {
	return &Runner{
		tables:   tables,
		timeVal:  timeVal,
		store:    store,
		textfile: textfile,
		now:      time.Now,
	}
}

// EvaluateFile loads the record at path, derives its metric mapping, scores
// it, and hands the result to the store and exporter when configured.
func (r *Runner) EvaluateFile(path string) (*Run, error) {
	rec, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}

	metrics, err := derive.Derive(rec, r.timeVal)
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", path, err)
	}

	s, err := r.tables.Score(metrics)
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", path, err)
	}

	run := &Run{
		ID:      uuid.New().String(),
		Source:  path,
		Score:   s,
		Metrics: metrics,
		At:      r.now(),
	}

	if r.store != nil {
		err := r.store.Insert(result.Run{
			ID:        run.ID,
			Source:    run.Source,
			Score:     run.Score,
			Metrics:   run.Metrics,
			CreatedAt: run.At,
		})
		if err != nil {
			return nil, err
		}
	}

	if r.textfile != "" {
		if err := export.WriteTextfile(r.textfile, run.ID, run.Score, run.Metrics); err != nil {
			return nil, err
		}
	}

	slog.Info("runner: record evaluated",
		"run_id", run.ID, "source", run.Source, "score", run.Score)
	return run, nil
}
