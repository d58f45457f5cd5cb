package score

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astroscore/astroscore/internal/derive"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_PerfectMatch(t *testing.T) {
	tables := Defaults()
	metrics := make(map[string]float64, len(tables.Reference))
	for key, r := range tables.Reference {
		metrics[key] = r
	}
	got, err := tables.Score(metrics)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 1 {
		t.Errorf("perfect match score = %g, want exactly 1", got)
	}
}

func TestScore_KnownDeviations(t *testing.T) {
	tables := Tables{
		Reference: map[string]float64{"a": 10, "b": 2},
		Weights:   map[string]float64{"a": 1.0, "b": 2.0},
	}
	tests := []struct {
		name    string
		metrics map[string]float64
		want    float64
	}{
		{
			// |12-10|/10 = 0.2, weighted 0.2 -> 1/1.2
			name:    "single 20% deviation",
			metrics: map[string]float64{"a": 12, "b": 2},
			want:    1 / 1.2,
		},
		{
			// a: 0.2*1.0, b: |3-2|/2*2.0 = 1.0 -> 1/2.2
			name:    "both metrics deviate",
			metrics: map[string]float64{"a": 12, "b": 3},
			want:    1 / 2.2,
		},
		{
			// deviation is symmetric in sign
			name:    "undershoot scores like overshoot",
			metrics: map[string]float64{"a": 8, "b": 2},
			want:    1 / 1.2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tables.Score(tc.metrics)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if !almostEqual(got, tc.want, 1e-12) {
				t.Errorf("score = %.15f, want %.15f", got, tc.want)
			}
		})
	}
}

func TestScore_Bounded(t *testing.T) {
	tables := Defaults()
	cases := []map[string]float64{
		{"schwarzschild_radius": 1e30},
		{"schwarzschild_radius": -1e30, "luminosity": 1e300},
		{"detected_peaks": 0, "transit_duration": 1e6},
	}
	for _, metrics := range cases {
		got, err := tables.Score(metrics)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if got <= 0 || got > 1 {
			t.Errorf("score %g out of (0, 1] for %v", got, metrics)
		}
	}
}

func TestScore_Monotonicity(t *testing.T) {
	// Growing the deviation of one metric strictly lowers the score.
	tables := Defaults()
	metrics := make(map[string]float64)
	for key, r := range tables.Reference {
		metrics[key] = r
	}
	prev, err := tables.Score(metrics)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for _, bump := range []float64{1.1, 2, 10, 1000} {
		metrics["rotation_curve_velocity"] = tables.Reference["rotation_curve_velocity"] * bump
		got, err := tables.Score(metrics)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if got >= prev {
			t.Errorf("score did not decrease: %g -> %g at bump %g", prev, got, bump)
		}
		prev = got
	}
}

func TestScore_NotNormalized(t *testing.T) {
	// Adding one more deviating metric lowers the score even though the
	// existing deviations are unchanged. The aggregation is a raw sum.
	tables := Tables{
		Reference: map[string]float64{"a": 1, "b": 1},
		Weights:   map[string]float64{"a": 1, "b": 1},
	}
	one, err := tables.Score(map[string]float64{"a": 2})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	two, err := tables.Score(map[string]float64{"a": 2, "b": 2})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if two >= one {
		t.Errorf("score with extra metric %g, want below %g", two, one)
	}
}

func TestScore_MissingKey(t *testing.T) {
	tables := Defaults()

	t.Run("unknown metric", func(t *testing.T) {
		_, err := tables.Score(map[string]float64{"spin_parameter": 0.5})
		if err == nil {
			t.Fatal("Score succeeded with a metric absent from the tables")
		}
		if !strings.Contains(err.Error(), "spin_parameter") {
			t.Errorf("error %q does not name the missing metric", err)
		}
	})

	t.Run("weight missing", func(t *testing.T) {
		broken := Tables{
			Reference: map[string]float64{"a": 1},
			Weights:   map[string]float64{},
		}
		if _, err := broken.Score(map[string]float64{"a": 1}); err == nil {
			t.Fatal("Score succeeded without a weight entry")
		}
	})
}

func TestScore_ZeroReference(t *testing.T) {
	tables := Tables{
		Reference: map[string]float64{"a": 0},
		Weights:   map[string]float64{"a": 1},
	}
	_, err := tables.Score(map[string]float64{"a": 5})
	if err == nil {
		t.Fatal("Score succeeded with a zero reference value")
	}
}

func TestDefaults_CoverDerivedKeys(t *testing.T) {
	tables := Defaults()
	if len(tables.Reference) != len(derive.Keys) {
		t.Errorf("reference table has %d entries, want %d", len(tables.Reference), len(derive.Keys))
	}
	for _, key := range derive.Keys {
		if _, ok := tables.Reference[key]; !ok {
			t.Errorf("reference table is missing %q", key)
		}
		if _, ok := tables.Weights[key]; !ok {
			t.Errorf("weight table is missing %q", key)
		}
	}
	if err := validate(tables); err != nil {
		t.Errorf("built-in tables fail validation: %v", err)
	}
}

func TestLoad(t *testing.T) {
	writeTables := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tables.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := writeTables(t, `
reference:
  a: 1.5
  b: 2.0
weights:
  a: 1.0
  b: 0.5
`)
		tables, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if tables.Reference["a"] != 1.5 || tables.Weights["b"] != 0.5 {
			t.Errorf("unexpected tables: %+v", tables)
		}
	})

	t.Run("zero reference rejected", func(t *testing.T) {
		path := writeTables(t, "reference:\n  a: 0\nweights:\n  a: 1\n")
		if _, err := Load(path); err == nil {
			t.Fatal("Load accepted a zero reference value")
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		path := writeTables(t, "reference:\n  a: 1\nweights:\n  a: -1\n")
		if _, err := Load(path); err == nil {
			t.Fatal("Load accepted a negative weight")
		}
	})

	t.Run("key mismatch rejected", func(t *testing.T) {
		path := writeTables(t, "reference:\n  a: 1\nweights:\n  b: 1\n")
		if _, err := Load(path); err == nil {
			t.Fatal("Load accepted mismatched key sets")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatal("Load succeeded on a missing file")
		}
	})
}
