package inference

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/i474232898/weather-forecast-charts/internal/weather"
)

// Config describes where the model lives and how its graph is wired.
type Config struct {
	ModelPath     string
	SharedLibrary string
	InputName     string
	OutputName    string
}

// ONNXPredictor implements weather.Predictor on top of ONNX Runtime.
// Input is float32 [1, HistorySize, features], output float32 [1, ForecastHours, metrics].
type ONNXPredictor struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

var (
	inputShape  = ort.NewShape(1, weather.HistorySize, int64(len(weather.FeatureOrder)))
	outputShape = ort.NewShape(1, weather.ForecastHours, int64(len(weather.MetricOrder)))
)

// NewONNXPredictor loads the model and binds its named input and output tensors.
func NewONNXPredictor(cfg Config) (*ONNXPredictor, error) {
	info, err := os.Stat(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrModelLoad, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is not a model file", weather.ErrModelLoad, cfg.ModelPath)
	}

	if !ort.IsInitialized() {
		if cfg.SharedLibrary != "" {
			ort.SetSharedLibraryPath(cfg.SharedLibrary)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("%w: onnxruntime init: %v", weather.ErrModelLoad, err)
		}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read graph of %s: %v", weather.ErrModelLoad, cfg.ModelPath, err)
	}
	if !hasTensor(inputs, cfg.InputName) {
		return nil, fmt.Errorf("%w: input tensor %q not found in model", weather.ErrInference, cfg.InputName)
	}
	if !hasTensor(outputs, cfg.OutputName) {
		return nil, fmt.Errorf("%w: output tensor %q not found in model", weather.ErrInference, cfg.OutputName)
	}

	in, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("%w: allocate input: %v", weather.ErrInference, err)
	}
	out, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		in.Destroy()
		return nil, fmt.Errorf("%w: allocate output: %v", weather.ErrInference, err)
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName},
		[]ort.Value{in}, []ort.Value{out}, nil)
	if err != nil {
		in.Destroy()
		out.Destroy()
		return nil, fmt.Errorf("%w: create session: %v", weather.ErrModelLoad, err)
	}

	log.Printf("INFO: loaded model %s (%s -> %s)", cfg.ModelPath, cfg.InputName, cfg.OutputName)
	return &ONNXPredictor{session: session, input: in, output: out}, nil
}

func hasTensor(infos []ort.InputOutputInfo, name string) bool {
	for _, i := range infos {
		if i.Name == name {
			return true
		}
	}
	return false
}

// Predict runs one inference pass. The runtime call is not cancellable; ctx is
// only checked before it starts.
func (p *ONNXPredictor) Predict(ctx context.Context, window weather.FeatureWindow) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	features := len(weather.FeatureOrder)
	if len(window) != weather.HistorySize {
		return nil, fmt.Errorf("%w: window has %d steps, want %d", weather.ErrInference, len(window), weather.HistorySize)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	data := p.input.GetData()
	for i, row := range window {
		if len(row) != features {
			return nil, fmt.Errorf("%w: step %d has %d features, want %d", weather.ErrInference, i, len(row), features)
		}
		for j, v := range row {
			data[i*features+j] = float32(v)
		}
	}

	if err := p.session.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrInference, err)
	}

	metrics := len(weather.MetricOrder)
	raw := p.output.GetData()
	out := make([][]float64, weather.ForecastHours)
	for i := range out {
		row := make([]float64, metrics)
		for j := range row {
			row[j] = float64(raw[i*metrics+j])
		}
		out[i] = row
	}
	return out, nil
}

// Close releases the session and its tensors.
func (p *ONNXPredictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for _, destroy := range []func() error{p.session.Destroy, p.input.Destroy, p.output.Destroy} {
		if err := destroy(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
