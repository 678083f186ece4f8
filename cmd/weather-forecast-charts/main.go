package main

import (
	"context"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/i474232898/weather-forecast-charts/internal/config"
	"github.com/i474232898/weather-forecast-charts/internal/dashboard"
	"github.com/i474232898/weather-forecast-charts/internal/inference"
	"github.com/i474232898/weather-forecast-charts/internal/store"
	"github.com/i474232898/weather-forecast-charts/internal/weather"
	"github.com/i474232898/weather-forecast-charts/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// History buffer holding exactly one model window.
	history := store.NewHistoryBuffer(weather.HistorySize, 0)
	provider := providers.NewSyntheticProvider(seed)

	ctx := context.Background()

	// Model load and the single inference pass gate the first paint; any failure
	// ends the process before a window exists.
	predictor, err := inference.NewONNXPredictor(inference.Config{
		ModelPath:     cfg.ModelPath,
		SharedLibrary: cfg.SharedLibrary,
		InputName:     cfg.InputTensor,
		OutputName:    cfg.OutputTensor,
	})
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	service := weather.NewService(history, provider, predictor, weather.DefaultNormalizer())
	if err := service.FetchAndStore(ctx); err != nil {
		predictor.Close()
		log.Fatalf("ERROR: fetch telemetry: %v", err)
	}

	forecast, err := service.Forecast(ctx)
	predictor.Close()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	hourly := weather.ExtractHourly(service.History())
	log.Printf("INFO: %d hourly samples, forecast %s issued at %s", hourly.Count, forecast.RunID, forecast.IssuedAt.Format(time.RFC3339))

	if cfg.SnapshotPath != "" {
		if err := dashboard.WriteSnapshot(cfg.SnapshotPath, cfg.WindowWidth, cfg.WindowHeight, hourly, forecast); err != nil {
			log.Fatalf("ERROR: snapshot: %v", err)
		}
		log.Printf("INFO: wrote %s", cfg.SnapshotPath)
		return
	}

	a := app.NewWithID("org.weather.forecast")
	w := a.NewWindow("Weather forecast")

	// Redraws only re-render; history and forecast are fixed for the process lifetime.
	charts := canvas.NewRaster(func(width, height int) image.Image {
		img, err := dashboard.RenderImage(width, height, hourly, forecast)
		if err != nil {
			log.Printf("ERROR: redraw %dx%d: %v", width, height, err)
			return image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
		}
		return img
	})

	w.SetContent(charts)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()
}
