package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

func TestSyntheticProviderCadence(t *testing.T) {
	p := NewSyntheticProvider(1)
	end := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	samples, err := p.FetchHistory(context.Background(), end, weather.HistorySize, weather.SampleInterval)
	require.NoError(t, err)
	require.Len(t, samples, weather.HistorySize)

	assert.Equal(t, end, samples[len(samples)-1].Timestamp)
	assert.Equal(t, end.Add(-(weather.HistorySize-1)*weather.SampleInterval), samples[0].Timestamp)
	for i := 1; i < len(samples); i++ {
		assert.Equal(t, weather.SampleInterval, samples[i].Timestamp.Sub(samples[i-1].Timestamp))
	}

	// A 20 minute cadence ending on the hour yields one hourly sample in three.
	assert.Equal(t, weather.HistorySize/3, weather.ExtractHourly(samples).Count)
}

func TestSyntheticProviderRanges(t *testing.T) {
	p := NewSyntheticProvider(42)
	samples, err := p.FetchHistory(context.Background(), time.Now(), 500, time.Minute)
	require.NoError(t, err)

	for _, s := range samples {
		assert.GreaterOrEqual(t, s.Pressure, 1000.0)
		assert.Less(t, s.Pressure, 1050.0)
		assert.GreaterOrEqual(t, s.Temperature, 20.0)
		assert.Less(t, s.Temperature, 30.0)
		assert.GreaterOrEqual(t, s.Humidity, 50.0)
		assert.Less(t, s.Humidity, 80.0)
		assert.GreaterOrEqual(t, s.DewPoint, 15.0)
		assert.Less(t, s.DewPoint, 20.0)
		assert.GreaterOrEqual(t, s.VPMax, 30.0)
		assert.Less(t, s.VPMax, 40.0)
	}
}

func TestSyntheticProviderDeterministic(t *testing.T) {
	end := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	a, err := NewSyntheticProvider(7).FetchHistory(context.Background(), end, 10, time.Hour)
	require.NoError(t, err)
	b, err := NewSyntheticProvider(7).FetchHistory(context.Background(), end, 10, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSyntheticProviderRejectsBadInput(t *testing.T) {
	p := NewSyntheticProvider(1)

	_, err := p.FetchHistory(context.Background(), time.Now(), 0, time.Minute)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.FetchHistory(ctx, time.Now(), 5, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
