package weather

import (
	"time"

	"github.com/google/uuid"
)

const (
	// HistorySize is the model input length: 3 days at one sample every 20 minutes.
	HistorySize = 3 * 24 * 3

	// SampleInterval is the cadence of the telemetry feed.
	SampleInterval = 20 * time.Minute

	// ForecastHours is the number of hourly steps the model predicts.
	ForecastHours = 24
)

// Feature names one physical quantity carried by a Sample.
type Feature string

const (
	FeaturePressure    Feature = "pressure"
	FeatureTemperature Feature = "temperature"
	FeatureHumidity    Feature = "humidity"
	FeatureDewPoint    Feature = "dew_point"
	FeatureVPMax       Feature = "vpmax"
)

// FeatureOrder is the column layout of the model input.
var FeatureOrder = []Feature{
	FeaturePressure,
	FeatureTemperature,
	FeatureHumidity,
	FeatureDewPoint,
	FeatureVPMax,
}

// MetricOrder is the column layout of the model output.
var MetricOrder = []Feature{
	FeaturePressure,
	FeatureTemperature,
	FeatureHumidity,
}

// Sample is a single observation.
type Sample struct {
	Timestamp   time.Time `json:"timestamp"`
	Pressure    float64   `json:"pressureMbar"`
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	DewPoint    float64   `json:"dewPointC"`
	VPMax       float64   `json:"vpMaxMbar"`
}

// Value returns the reading for f. Unknown features read as zero.
func (s Sample) Value(f Feature) float64 {
	switch f {
	case FeaturePressure:
		return s.Pressure
	case FeatureTemperature:
		return s.Temperature
	case FeatureHumidity:
		return s.Humidity
	case FeatureDewPoint:
		return s.DewPoint
	case FeatureVPMax:
		return s.VPMax
	default:
		return 0
	}
}

// FeatureWindow is a dense [step][feature] model input.
type FeatureWindow [][]float64

// Forecast is the denormalized model output, [hour][metric] in MetricOrder.
// It is computed once per history snapshot and not mutated afterwards.
type Forecast struct {
	RunID    uuid.UUID   `json:"runId"`
	IssuedAt time.Time   `json:"issuedAt"`
	Values   [][]float64 `json:"values"`
}

// Series returns the forecast column for metric, or nil if the metric is not predicted.
func (f Forecast) Series(metric Feature) []float64 {
	col := -1
	for i, m := range MetricOrder {
		if m == metric {
			col = i
			break
		}
	}
	if col < 0 || len(f.Values) == 0 {
		return nil
	}

	out := make([]float64, 0, len(f.Values))
	for _, row := range f.Values {
		if col >= len(row) {
			return nil
		}
		out = append(out, row[col])
	}
	return out
}
