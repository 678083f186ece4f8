package weather

import "fmt"

// HourlySeries holds the on-the-hour readings of each charted metric.
type HourlySeries struct {
	Pressure    []float64
	Temperature []float64
	Humidity    []float64
	Count       int
}

// Metric returns the series for m, or nil for a metric that is not charted.
func (h HourlySeries) Metric(m Feature) []float64 {
	switch m {
	case FeaturePressure:
		return h.Pressure
	case FeatureTemperature:
		return h.Temperature
	case FeatureHumidity:
		return h.Humidity
	default:
		return nil
	}
}

// ExtractHourly keeps the samples whose timestamp falls exactly on the hour,
// in the timestamp's own location, preserving order.
func ExtractHourly(history []Sample) HourlySeries {
	var out HourlySeries
	for _, s := range history {
		if s.Timestamp.Minute() != 0 {
			continue
		}
		out.Pressure = append(out.Pressure, s.Pressure)
		out.Temperature = append(out.Temperature, s.Temperature)
		out.Humidity = append(out.Humidity, s.Humidity)
		out.Count++
	}
	return out
}

// TrailingWindow returns the last size samples of history.
func TrailingWindow(history []Sample, size int) ([]Sample, error) {
	if size <= 0 || len(history) < size {
		return nil, fmt.Errorf("%w: have %d samples, need %d", ErrShortHistory, len(history), size)
	}
	return history[len(history)-size:], nil
}
