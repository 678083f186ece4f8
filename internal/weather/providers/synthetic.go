package providers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

// SyntheticProvider implements the weather.Provider interface with generated telemetry.
// Readings are uniform integers in fixed physical ranges.
type SyntheticProvider struct {
	name string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticProvider returns a provider seeded with seed; equal seeds yield equal data.
func NewSyntheticProvider(seed uint64) *SyntheticProvider {
	return &SyntheticProvider{
		name: "synthetic",
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (p *SyntheticProvider) Name() string {
	return p.name
}

func (p *SyntheticProvider) FetchHistory(ctx context.Context, end time.Time, count int, interval time.Duration) ([]weather.Sample, error) {
	if count <= 0 {
		return nil, fmt.Errorf("synthetic: count must be positive, got %d", count)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("synthetic: interval must be positive, got %s", interval)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	samples := make([]weather.Sample, count)
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		samples[i] = weather.Sample{
			Timestamp:   end.Add(-time.Duration(count-1-i) * interval),
			Pressure:    float64(1000 + p.rng.IntN(50)),
			Temperature: float64(20 + p.rng.IntN(10)),
			Humidity:    float64(50 + p.rng.IntN(30)),
			DewPoint:    float64(15 + p.rng.IntN(5)),
			VPMax:       float64(30 + p.rng.IntN(10)),
		}
	}
	return samples, nil
}
