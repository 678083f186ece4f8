package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

var (
	// ErrNotFound is returned when the buffer holds no samples.
	ErrNotFound = errors.New("no samples in history buffer")
)

// HistoryBuffer is a concurrency-safe, capacity-bounded, chronologically ordered sample buffer.
type HistoryBuffer struct {
	mu sync.RWMutex

	samples []weather.Sample

	// retention configuration
	capacity int           // max number of samples; oldest evicted first
	maxAge   time.Duration // optional max age relative to the newest sample
}

// NewHistoryBuffer creates a buffer with the given limits.
// If capacity is <= 0, it is treated as unlimited.
func NewHistoryBuffer(capacity int, maxAge time.Duration) *HistoryBuffer {
	return &HistoryBuffer{
		capacity: capacity,
		maxAge:   maxAge,
	}
}

// Append adds samples in order and enforces retention.
func (b *HistoryBuffer) Append(samples ...weather.Sample) {
	if len(samples) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.samples = append(b.samples, samples...)

	// Enforce retention by count.
	if b.capacity > 0 && len(b.samples) > b.capacity {
		over := len(b.samples) - b.capacity
		b.samples = append([]weather.Sample(nil), b.samples[over:]...)
	}

	// Enforce retention by age.
	if b.maxAge > 0 {
		cutoff := b.samples[len(b.samples)-1].Timestamp.Add(-b.maxAge)
		i := 0
		for ; i < len(b.samples); i++ {
			if !b.samples[i].Timestamp.Before(cutoff) {
				break
			}
		}
		if i > 0 {
			b.samples = append([]weather.Sample(nil), b.samples[i:]...)
		}
	}
}

// Snapshot returns a copy of the buffered samples, oldest first.
func (b *HistoryBuffer) Snapshot() []weather.Sample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]weather.Sample, len(b.samples))
	copy(out, b.samples)
	return out
}

// Latest returns the most recent sample.
func (b *HistoryBuffer) Latest() (weather.Sample, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.samples) == 0 {
		return weather.Sample{}, ErrNotFound
	}
	return b.samples[len(b.samples)-1], nil
}

// Len returns the number of buffered samples.
func (b *HistoryBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Cap returns the configured capacity (0 = unlimited).
func (b *HistoryBuffer) Cap() int {
	return b.capacity
}
