package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/common/expfmt"
)

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroscore.prom")
	metrics := map[string]float64{
		"schwarzschild_radius": 0,
		"luminosity":           1.5,
		"detected_peaks":       3,
	}

	if err := WriteTextfile(path, "run-abc", 0.25, metrics); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	// The output must parse back as a valid text exposition.
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(f)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}

	scoreMF, ok := mfs["astroscore_score"]
	if !ok {
		t.Fatal("astroscore_score family missing")
	}
	if got := scoreMF.GetMetric()[0].GetGauge().GetValue(); got != 0.25 {
		t.Errorf("score = %g, want 0.25", got)
	}
	if got := scoreMF.GetMetric()[0].GetLabel()[0].GetValue(); got != "run-abc" {
		t.Errorf("run_id label = %q", got)
	}

	valueMF, ok := mfs["astroscore_metric_value"]
	if !ok {
		t.Fatal("astroscore_metric_value family missing")
	}
	if got := len(valueMF.GetMetric()); got != len(metrics) {
		t.Fatalf("metric series = %d, want %d", got, len(metrics))
	}
	found := map[string]float64{}
	for _, m := range valueMF.GetMetric() {
		found[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}
	for k, v := range metrics {
		if found[k] != v {
			t.Errorf("%s = %g, want %g", k, found[k], v)
		}
	}
}

func TestWriteTextfile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroscore.prom")
	if err := WriteTextfile(path, "run-1", 0.5, map[string]float64{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if err := WriteTextfile(path, "run-2", 0.75, map[string]float64{"a": 2}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(f)
	if err != nil {
		t.Fatal(err)
	}
	m := mfs["astroscore_score"].GetMetric()[0]
	if got := m.GetLabel()[0].GetValue(); got != "run-2" {
		t.Errorf("run_id after overwrite = %q, want run-2", got)
	}
	if got := m.GetGauge().GetValue(); got != 0.75 {
		t.Errorf("score after overwrite = %g, want 0.75", got)
	}
}
