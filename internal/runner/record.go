package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astroscore/astroscore/internal/derive"
)

// LoadRecord parses an observation record from a YAML file. The derivation
// engine performs no validation of its own, so beyond YAML well-formedness
// a record is taken as given; out-of-domain values surface as derivation
// failures.
func LoadRecord(path string) (*derive.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: read record: %w", err)
	}
	var rec derive.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("runner: parse record %s: %w", path, err)
	}
	return &rec, nil
}
