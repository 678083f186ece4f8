package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates loading telemetry into the history buffer and running the forecast.
type Service struct {
	store      Store
	provider   Provider
	predictor  Predictor
	normalizer *Normalizer

	now func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, provider Provider, predictor Predictor, normalizer *Normalizer) *Service {
	return &Service{
		store:      store,
		provider:   provider,
		predictor:  predictor,
		normalizer: normalizer,
		now:        time.Now,
	}
}

// FetchAndStore pulls one full window of samples ending at the current hour and
// appends them to the store.
func (s *Service) FetchAndStore(ctx context.Context) error {
	if s.provider == nil {
		return fmt.Errorf("no telemetry provider configured")
	}

	// Start of the current hour in local time; Truncate would work on UTC offsets.
	now := s.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	samples, err := s.provider.FetchHistory(ctx, end, HistorySize, SampleInterval)
	if err != nil {
		return fmt.Errorf("provider %s: %w", s.provider.Name(), err)
	}

	s.store.Append(samples...)
	log.Printf("INFO: fetched %d samples from %s", len(samples), s.provider.Name())
	return nil
}

// Forecast runs the model once over the trailing window of the stored history.
func (s *Service) Forecast(ctx context.Context) (Forecast, error) {
	window, err := TrailingWindow(s.store.Snapshot(), HistorySize)
	if err != nil {
		return Forecast{}, err
	}

	input := s.normalizer.Normalize(window)

	start := s.now()
	raw, err := s.predictor.Predict(ctx, input)
	if err != nil {
		return Forecast{}, err
	}
	if len(raw) != ForecastHours {
		return Forecast{}, fmt.Errorf("%w: model returned %d steps, want %d", ErrInference, len(raw), ForecastHours)
	}

	values, err := s.normalizer.Denormalize(raw)
	if err != nil {
		return Forecast{}, err
	}

	fc := Forecast{
		RunID:    uuid.New(),
		IssuedAt: window[len(window)-1].Timestamp,
		Values:   values,
	}
	log.Printf("DEBUG: forecast %s computed in %s", fc.RunID, s.now().Sub(start))
	return fc, nil
}

// History returns a copy of the stored samples.
func (s *Service) History() []Sample {
	return s.store.Snapshot()
}
