package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astroscore/astroscore/internal/derive"
	"github.com/astroscore/astroscore/internal/result"
	"github.com/astroscore/astroscore/internal/score"
)

const solarYAML = `
mass: 1.989e30
velocity_constant: 3.0e7
temperature: 5778
radius: 1.0e6
gravity: 9.8
luminosity: 3.828e26
lorentz_factor: 1.0
previous_coordinates: []
`

func writeRecord(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecord(t *testing.T) {
	rec, err := LoadRecord(writeRecord(t, solarYAML))
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if rec.Mass != 1.989e30 {
		t.Errorf("mass: got %g", rec.Mass)
	}
	if rec.VelocityConstant != 3.0e7 {
		t.Errorf("velocity_constant: got %g", rec.VelocityConstant)
	}
	if len(rec.PreviousCoordinates) != 0 {
		t.Errorf("previous_coordinates: got %d entries", len(rec.PreviousCoordinates))
	}
}

func TestLoadRecord_Coordinates(t *testing.T) {
	body := `
mass: 1.989e30
velocity_constant: 3.0e7
temperature: 5778
radius: 1.0e6
gravity: 9.8
luminosity: 3.828e26
lorentz_factor: 1.0
previous_coordinates:
  - {ra: 1.1, dec: -0.4}
  - {ra: 1.2, dec: -0.3}
`
	rec, err := LoadRecord(writeRecord(t, body))
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if len(rec.PreviousCoordinates) != 2 {
		t.Fatalf("previous_coordinates: got %d entries, want 2", len(rec.PreviousCoordinates))
	}
	if rec.PreviousCoordinates[1].Dec != -0.3 {
		t.Errorf("coordinate dec: got %g", rec.PreviousCoordinates[1].Dec)
	}
}

func TestLoadRecord_BadYAML(t *testing.T) {
	if _, err := LoadRecord(writeRecord(t, "mass: [not a number\n")); err == nil {
		t.Fatal("LoadRecord accepted malformed yaml")
	}
}

func TestEvaluateFile(t *testing.T) {
	store, err := result.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("result.Open: %v", err)
	}
	defer store.Close()

	textfile := filepath.Join(t.TempDir(), "astroscore.prom")
	r := New(score.Defaults(), 1.0, store, textfile)

	run, err := r.EvaluateFile(writeRecord(t, solarYAML))
	if err != nil {
		t.Fatalf("EvaluateFile: %v", err)
	}

	if run.ID == "" {
		t.Error("run has no id")
	}
	if run.Score <= 0 || run.Score > 1 {
		t.Errorf("score %g out of (0, 1]", run.Score)
	}
	if len(run.Metrics) != len(derive.Keys) {
		t.Errorf("metrics: got %d, want %d", len(run.Metrics), len(derive.Keys))
	}

	// Run history captured.
	recent, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != run.ID {
		t.Errorf("run not persisted: %+v", recent)
	}
	if recent[0].Score != run.Score {
		t.Errorf("persisted score %g, want %g", recent[0].Score, run.Score)
	}

	// Textfile written.
	if _, err := os.Stat(textfile); err != nil {
		t.Errorf("textfile not written: %v", err)
	}
}

func TestEvaluateFile_Regression(t *testing.T) {
	// The same record scores identically across repeated runs.
	r := New(score.Defaults(), 1.0, nil, "")
	path := writeRecord(t, solarYAML)

	first, err := r.EvaluateFile(path)
	if err != nil {
		t.Fatalf("EvaluateFile: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := r.EvaluateFile(path)
		if err != nil {
			t.Fatalf("EvaluateFile (repeat %d): %v", i, err)
		}
		if again.Score != first.Score {
			t.Fatalf("score drifted: %g != %g", again.Score, first.Score)
		}
	}
	if got := first.Metrics[derive.KeyDetectedPeaks]; got != 0 {
		t.Errorf("detected_peaks = %g, want 0 for zero prior coordinates", got)
	}
}

func TestEvaluateFile_DomainFailure(t *testing.T) {
	bad := strings.Replace(solarYAML, "radius: 1.0e6", "radius: 0", 1)
	r := New(score.Defaults(), 1.0, nil, "")
	if _, err := r.EvaluateFile(writeRecord(t, bad)); err == nil {
		t.Fatal("EvaluateFile succeeded on an out-of-domain record")
	}
}

func TestEvaluateFile_MissingFile(t *testing.T) {
	r := New(score.Defaults(), 1.0, nil, "")
	if _, err := r.EvaluateFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("EvaluateFile succeeded on a missing file")
	}
}
