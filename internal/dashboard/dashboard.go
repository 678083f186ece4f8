package dashboard

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/i474232898/weather-forecast-charts/internal/chart"
	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

const (
	margin      = 20
	topOffset   = 50
	panelGap    = 40
	reservedV   = 120
	panelsCount = 3
)

// Panel is everything one chart needs for a redraw.
type Panel struct {
	Spec     chart.Spec
	History  []float64
	Forecast []float64
}

type metricPanel struct {
	metric weather.Feature
	title  string
}

// panels in top-to-bottom order; the position doubles as the palette index.
var metricPanels = [panelsCount]metricPanel{
	{weather.FeaturePressure, "Pressure (mbar)"},
	{weather.FeatureTemperature, "Temperature (°C)"},
	{weather.FeatureHumidity, "Humidity (%)"},
}

// Layout splits a width x height canvas into three stacked chart rects.
func Layout(width, height int) [panelsCount]chart.Rect {
	chartW := float64(width - 2*margin)
	chartH := float64((height - reservedV) / panelsCount)

	var out [panelsCount]chart.Rect
	for i := range out {
		out[i] = chart.Rect{
			X:      margin,
			Y:      topOffset + float64(i)*(chartH+panelGap),
			Width:  chartW,
			Height: chartH,
		}
	}
	return out
}

// Panels pairs each metric's hourly history and forecast with its rect.
func Panels(width, height int, hourly weather.HourlySeries, fc weather.Forecast) []Panel {
	rects := Layout(width, height)
	out := make([]Panel, 0, panelsCount)
	for i, mp := range metricPanels {
		out = append(out, Panel{
			Spec: chart.Spec{
				Rect:        rects[i],
				Title:       mp.title,
				SeriesIndex: i,
			},
			History:  hourly.Metric(mp.metric),
			Forecast: fc.Series(mp.metric),
		})
	}
	return out
}

// Draw renders all panels onto s.
func Draw(s chart.Surface, width, height int, hourly weather.HourlySeries, fc weather.Forecast) error {
	for _, p := range Panels(width, height, hourly, fc) {
		if err := chart.Render(s, p.Spec, p.History, p.Forecast); err != nil {
			return err
		}
	}
	return nil
}

// RenderImage draws the dashboard on a white width x height image.
func RenderImage(width, height int, hourly weather.HourlySeries, fc weather.Forecast) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	s, err := chart.NewRasterSurface(img)
	if err != nil {
		return nil, err
	}
	if err := Draw(s, width, height, hourly, fc); err != nil {
		return nil, err
	}
	return img, nil
}

// WriteSnapshot renders the dashboard and writes it as a PNG file.
func WriteSnapshot(path string, width, height int, hourly weather.HourlySeries, fc weather.Forecast) error {
	img, err := RenderImage(width, height, hourly, fc)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
