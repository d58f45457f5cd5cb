package derive

import (
	"fmt"
	"log/slog"
	"math"
)

// Mapping is the complete set of derived metrics for one record, keyed by
// metric name. It is never mutated after Derive returns it.
type Mapping map[string]float64

// Derive computes all metrics in Keys for the given record. The time scalar
// t is in seconds and feeds only the Hawking temperature metric.
//
// The returned mapping always holds exactly len(Keys) entries. If any metric
// evaluates to NaN or an infinity the whole call fails with an error naming
// the metric, and no mapping is returned.
func Derive(rec *Record, t float64) (Mapping, error) {
	slog.Debug("derive: computing metric mapping",
		"metrics", len(Keys), "time", t)

	out := make(Mapping, len(Keys))
	for _, key := range Keys {
		v := metricFns[key](rec, t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("derive: metric %q is not finite (%v)", key, v)
		}
		out[key] = v
	}
	return out, nil
}
