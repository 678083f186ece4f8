package weather

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrModelLoad is returned when the model artifact is missing or cannot be loaded.
	ErrModelLoad = errors.New("model load failed")

	// ErrInference is returned when the runtime rejects the input or produces an unexpected output.
	ErrInference = errors.New("inference failed")

	// ErrShortHistory is returned when fewer samples than a full window are available.
	ErrShortHistory = errors.New("not enough history for a feature window")
)

// Provider abstracts a telemetry source.
type Provider interface {
	Name() string
	// FetchHistory returns count samples, oldest first, the last one taken at end.
	FetchHistory(ctx context.Context, end time.Time, count int, interval time.Duration) ([]Sample, error)
}

// Predictor runs the forecasting model on a normalized window.
// Input is [HistorySize][len(FeatureOrder)], output [ForecastHours][len(MetricOrder)].
type Predictor interface {
	Predict(ctx context.Context, window FeatureWindow) ([][]float64, error)
}

// Store is the contract the history buffer must satisfy.
type Store interface {
	Append(samples ...Sample)
	Snapshot() []Sample
}
