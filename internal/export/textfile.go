package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// WriteTextfile renders the run to path in Prometheus text exposition
// format. Metric series are emitted in sorted key order so successive runs
// produce diff-friendly output.
func WriteTextfile(path, runID string, score float64, metrics map[string]float64) error {
	families := []*dto.MetricFamily{scoreFamily(runID, score), metricFamily(metrics)}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := expfmt.NewEncoder(tmp, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			tmp.Close()
			return fmt.Errorf("export: encode %s: %w", mf.GetName(), err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: rename into place: %w", err)
	}
	return nil
}

func scoreFamily(runID string, score float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: ptr("astroscore_score"),
		Help: ptr("Final pipeline score for the most recent run."),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{
			Label: []*dto.LabelPair{{Name: ptr("run_id"), Value: ptr(runID)}},
			Gauge: &dto.Gauge{Value: ptr(score)},
		}},
	}
}

func metricFamily(metrics map[string]float64) *dto.MetricFamily {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mf := &dto.MetricFamily{
		Name: ptr("astroscore_metric_value"),
		Help: ptr("Derived metric values for the most recent run."),
		Type: dto.MetricType_GAUGE.Enum(),
	}
	for _, k := range keys {
		mf.Metric = append(mf.Metric, &dto.Metric{
			Label: []*dto.LabelPair{{Name: ptr("metric"), Value: ptr(k)}},
			Gauge: &dto.Gauge{Value: ptr(metrics[k])},
		})
	}
	return mf
}

func ptr[T any](v T) *T { return &v }
