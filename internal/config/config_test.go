package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"WEATHER_MODEL_PATH", "WEATHER_MODEL_INPUT", "WEATHER_MODEL_OUTPUT", "WEATHER_SEED", "WINDOW_WIDTH", "WINDOW_HEIGHT", "WEATHER_SNAPSHOT_PATH"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "../saved_models/transformer_model/model.onnx", cfg.ModelPath)
	assert.Equal(t, "serving_default_input_1", cfg.InputTensor)
	assert.Equal(t, "StatefulPartitionedCall", cfg.OutputTensor)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Empty(t, cfg.SnapshotPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEATHER_MODEL_PATH", "/models/weather.onnx")
	t.Setenv("WEATHER_SEED", "42")
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("WINDOW_HEIGHT", "not-a-number")
	t.Setenv("WEATHER_SNAPSHOT_PATH", "/tmp/out.png")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/models/weather.onnx", cfg.ModelPath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 1024, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, "/tmp/out.png", cfg.SnapshotPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("WEATHER_SEED", "-1")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("WEATHER_SEED", "")
	t.Setenv("WINDOW_WIDTH", "50")
	_, err = Load()
	assert.Error(t, err)
}
