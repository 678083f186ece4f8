package weather

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed stats.yaml
var embeddedStats []byte

// ErrStatsMismatch is returned when the normalization table does not line up with the feature order.
var ErrStatsMismatch = errors.New("normalization table does not match feature order")

// FeatureStat holds the affine constants for one feature.
type FeatureStat struct {
	Name Feature `yaml:"name"`
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

type statsFile struct {
	Features []FeatureStat `yaml:"features"`
}

// Normalizer maps samples to model space and model output back to physical units.
type Normalizer struct {
	order []Feature
	stats map[Feature]FeatureStat
}

// ParseStats decodes a YAML normalization table.
func ParseStats(data []byte) ([]FeatureStat, error) {
	var f statsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse normalization table: %w", err)
	}
	return f.Features, nil
}

// NewNormalizer builds a Normalizer for order from table.
func NewNormalizer(table []FeatureStat, order []Feature) (*Normalizer, error) {
	if len(table) != len(order) {
		return nil, fmt.Errorf("%w: %d stats for %d features", ErrStatsMismatch, len(table), len(order))
	}

	stats := make(map[Feature]FeatureStat, len(table))
	for _, s := range table {
		if s.Std == 0 {
			return nil, fmt.Errorf("%w: zero std for %s", ErrStatsMismatch, s.Name)
		}
		stats[s.Name] = s
	}
	for _, f := range order {
		if _, ok := stats[f]; !ok {
			return nil, fmt.Errorf("%w: no stats for %s", ErrStatsMismatch, f)
		}
	}

	return &Normalizer{
		order: append([]Feature(nil), order...),
		stats: stats,
	}, nil
}

// DefaultNormalizer returns the normalizer for the embedded training constants.
// It panics if the embedded table is out of sync with FeatureOrder.
func DefaultNormalizer() *Normalizer {
	table, err := ParseStats(embeddedStats)
	if err != nil {
		panic(err)
	}
	n, err := NewNormalizer(table, FeatureOrder)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize returns the [step][feature] z-scores of samples.
func (n *Normalizer) Normalize(samples []Sample) FeatureWindow {
	out := make(FeatureWindow, len(samples))
	for i, s := range samples {
		row := make([]float64, len(n.order))
		for j, f := range n.order {
			st := n.stats[f]
			row[j] = (s.Value(f) - st.Mean) / st.Std
		}
		out[i] = row
	}
	return out
}

// Denormalize maps [step][metric] model output in MetricOrder back to physical units.
func (n *Normalizer) Denormalize(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(MetricOrder) {
			return nil, fmt.Errorf("%w: output step %d has %d values, want %d", ErrInference, i, len(row), len(MetricOrder))
		}
		res := make([]float64, len(row))
		for j, m := range MetricOrder {
			st, ok := n.stats[m]
			if !ok {
				return nil, fmt.Errorf("%w: no stats for %s", ErrStatsMismatch, m)
			}
			res[j] = row[j]*st.Std + st.Mean
		}
		out[i] = res
	}
	return out, nil
}
