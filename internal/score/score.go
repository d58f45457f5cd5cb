package score

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Tables holds the reference value and weight for every metric the scoring
// stage knows about. Treat as immutable once constructed.
type Tables struct {
	Reference map[string]float64 `yaml:"reference"`
	Weights   map[string]float64 `yaml:"weights"`
}

// Score aggregates the metric mapping into one scalar in (0, 1].
//
// Every key in metrics must be present in both tables; a missing entry is
// an error, never a silent skip. A zero reference value is likewise an
// error, since the normalized deviation |v-r|/r is undefined there.
func (t Tables) Score(metrics map[string]float64) (float64, error) {
	// Summation order is fixed so the same mapping always produces the
	// bit-identical score.
	keys := make([]string, 0, len(metrics))
	for key := range metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sum float64
	for _, key := range keys {
		v := metrics[key]
		r, ok := t.Reference[key]
		if !ok {
			return 0, fmt.Errorf("score: no reference value for metric %q", key)
		}
		w, ok := t.Weights[key]
		if !ok {
			return 0, fmt.Errorf("score: no weight for metric %q", key)
		}
		if r == 0 {
			return 0, fmt.Errorf("score: reference value for metric %q is zero, normalized deviation undefined", key)
		}
		sum += w * math.Abs((v-r)/r)
	}
	return 1 / (1 + sum), nil
}

// Load reads a Tables override from a YAML file. The loaded tables must
// cover the same keys in both maps, carry no zero reference values, and no
// negative weights; anything else is rejected so a bad override fails at
// startup instead of mid-run.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("score: read tables: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("score: parse tables yaml: %w", err)
	}
	if err := validate(t); err != nil {
		return Tables{}, fmt.Errorf("score: %w", err)
	}
	return t, nil
}

func validate(t Tables) error {
	if len(t.Reference) == 0 {
		return fmt.Errorf("reference table is empty")
	}
	for key, r := range t.Reference {
		if _, ok := t.Weights[key]; !ok {
			return fmt.Errorf("metric %q has a reference value but no weight", key)
		}
		if r == 0 {
			return fmt.Errorf("metric %q has a zero reference value", key)
		}
	}
	for key, w := range t.Weights {
		if _, ok := t.Reference[key]; !ok {
			return fmt.Errorf("metric %q has a weight but no reference value", key)
		}
		if w < 0 {
			return fmt.Errorf("metric %q has a negative weight", key)
		}
	}
	return nil
}
