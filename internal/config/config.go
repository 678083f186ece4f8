package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	// Model artifact and the graph tensors it is driven through.
	ModelPath     string `validate:"required"`
	SharedLibrary string
	InputTensor   string `validate:"required"`
	OutputTensor  string `validate:"required"`

	// Seed for the synthetic telemetry; 0 picks one from the clock.
	Seed uint64

	WindowWidth  int `validate:"gte=200"`
	WindowHeight int `validate:"gte=200"`

	// SnapshotPath, when set, writes the charts as a PNG instead of opening a window.
	SnapshotPath string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.ModelPath = getenvDefault("WEATHER_MODEL_PATH", "../saved_models/transformer_model/model.onnx")
	cfg.SharedLibrary = os.Getenv("ONNXRUNTIME_SHARED_LIBRARY")
	cfg.InputTensor = getenvDefault("WEATHER_MODEL_INPUT", "serving_default_input_1")
	cfg.OutputTensor = getenvDefault("WEATHER_MODEL_OUTPUT", "StatefulPartitionedCall")

	if v := os.Getenv("WEATHER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHER_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	cfg.WindowWidth = getenvInt("WINDOW_WIDTH", 800)
	cfg.WindowHeight = getenvInt("WINDOW_HEIGHT", 600)
	cfg.SnapshotPath = os.Getenv("WEATHER_SNAPSHOT_PATH")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
