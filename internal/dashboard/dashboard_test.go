package dashboard

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-forecast-charts/internal/chart"
	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

func sampleData() (weather.HourlySeries, weather.Forecast) {
	hourly := weather.HourlySeries{
		Pressure:    []float64{1001, 1003, 1002},
		Temperature: []float64{21, 24, 22},
		Humidity:    []float64{55, 60, 70},
		Count:       3,
	}
	values := make([][]float64, weather.ForecastHours)
	for i := range values {
		values[i] = []float64{1004, 23, 65}
	}
	return hourly, weather.Forecast{IssuedAt: time.Now(), Values: values}
}

func TestLayoutDefaultWindow(t *testing.T) {
	rects := Layout(800, 600)

	assert.Equal(t, chart.Rect{X: 20, Y: 50, Width: 760, Height: 160}, rects[0])
	assert.Equal(t, chart.Rect{X: 20, Y: 250, Width: 760, Height: 160}, rects[1])
	assert.Equal(t, chart.Rect{X: 20, Y: 450, Width: 760, Height: 160}, rects[2])
}

func TestPanelsSelectSeriesPerMetric(t *testing.T) {
	hourly, fc := sampleData()
	panels := Panels(800, 600, hourly, fc)
	require.Len(t, panels, 3)

	titles := []string{"Pressure (mbar)", "Temperature (°C)", "Humidity (%)"}
	for i, p := range panels {
		assert.Equal(t, i, p.Spec.SeriesIndex)
		assert.Equal(t, titles[i], p.Spec.Title)
		assert.Len(t, p.Forecast, weather.ForecastHours)
	}
	assert.Equal(t, hourly.Temperature, panels[1].History)
	assert.Equal(t, 65.0, panels[2].Forecast[0])
	assert.Equal(t, 1004.0, panels[0].Forecast[23])
}

func TestPanelsWithoutForecast(t *testing.T) {
	hourly, _ := sampleData()
	for _, p := range Panels(800, 600, hourly, weather.Forecast{}) {
		assert.Nil(t, p.Forecast)
	}
}

func TestRenderImage(t *testing.T) {
	hourly, fc := sampleData()
	img, err := RenderImage(800, 600, hourly, fc)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	_, err = RenderImage(0, 600, hourly, fc)
	assert.Error(t, err)

	// Too short for three panels.
	_, err = RenderImage(800, 100, hourly, fc)
	assert.Error(t, err)
}

func TestRenderImageEmptyHistory(t *testing.T) {
	_, err := RenderImage(800, 600, weather.HourlySeries{}, weather.Forecast{})
	assert.NoError(t, err)
}

func TestWriteSnapshot(t *testing.T) {
	hourly, fc := sampleData()
	path := filepath.Join(t.TempDir(), "forecast.png")

	require.NoError(t, WriteSnapshot(path, 640, 480, hourly, fc))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}
