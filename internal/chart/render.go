package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// The horizontal domain is a fixed 96 logical hours: 72 of history up to "now",
// then forecast headroom.
const (
	logicalWidth  = 96
	historyUnits  = 72
	gridStep      = 24
	tickStep      = 6
	yDivisions    = 4
	markerRadius  = 3
	majorTickLen  = 10
	minorTickLen  = 5
	titleFontSize = 12
	labelFontSize = 8
)

var (
	// Palette holds the historical series colours, indexed by Spec.SeriesIndex.
	Palette = [3]drawing.Color{
		{R: 51, G: 153, B: 230, A: 255},
		{R: 230, G: 51, B: 51, A: 255},
		{R: 51, G: 230, B: 51, A: 255},
	}

	// ForecastColor is used for every forecast series.
	ForecastColor = drawing.Color{R: 255, G: 128, B: 0, A: 255}

	gridColor      = drawing.Color{R: 179, G: 179, B: 179, A: 77}
	axisColor      = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	minorTickColor = drawing.Color{R: 128, G: 128, B: 128, A: 255}
)

var validate = validator.New()

// Rect is a pixel-space rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
}

// Spec is the per-panel rendering input.
type Spec struct {
	Rect        Rect
	Title       string
	SeriesIndex int `validate:"min=0,max=2"`
}

// Validate reports whether s can be rendered.
func (s Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid chart spec %q: %w", s.Title, err)
	}
	return nil
}

// Scale maps values to pixel rows within a rect.
type Scale struct {
	Min, Max float64
}

// NewScale derives the vertical scale from values: floor of the minimum, ceil of the
// maximum, and a one unit span when they coincide. ok is false for an empty series.
func NewScale(values []float64) (s Scale, ok bool) {
	if len(values) == 0 {
		return Scale{}, false
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	s = Scale{Min: math.Floor(lo), Max: math.Ceil(hi)}
	if s.Max == s.Min {
		s.Max = s.Min + 1
	}
	return s, true
}

// Y returns the pixel row of v; Min sits on the bottom edge and Max on the top edge.
func (s Scale) Y(r Rect, v float64) float64 {
	return r.Y + r.Height - (v-s.Min)/(s.Max-s.Min)*r.Height
}

// LogicalX maps logical hour unit i (0..96) to a pixel column.
func LogicalX(r Rect, i float64) float64 {
	return r.X + i/logicalWidth*r.Width
}

// HistoryX places point i of n across the history part of the rect.
func HistoryX(r Rect, i, n int) float64 {
	if n <= 1 {
		return r.X
	}
	return r.X + float64(i)/float64(n-1)*r.Width*historyUnits/logicalWidth
}

// ForecastX places forecast step i after n history points, ending on the right edge.
func ForecastX(r Rect, i, n, m int) float64 {
	den := n + m - 1
	if den <= 0 {
		return r.X + r.Width
	}
	return r.X + float64(n+i)/float64(den)*r.Width
}

// Render draws one panel back to front: grid, axes, title, x ticks, y labels,
// history line and markers, then forecast line and markers. forecast may be nil.
func Render(s Surface, spec Spec, historical, forecast []float64) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	r := spec.Rect

	drawGrid(s, r)
	drawAxes(s, r)

	s.SetColor(axisColor)
	s.SetFontSize(titleFontSize)
	s.Text(spec.Title, r.X, r.Y-10)

	drawXTicks(s, r)

	scale, ok := NewScale(historical)
	if !ok {
		s.SetColor(minorTickColor)
		s.SetFontSize(labelFontSize)
		s.Text("no data", r.X+r.Width/2-15, r.Y+r.Height/2)
		return nil
	}

	drawYLabels(s, r, scale)

	n := len(historical)
	drawSeries(s, Palette[spec.SeriesIndex], len(historical), func(i int) (float64, float64) {
		return HistoryX(r, i, n), scale.Y(r, historical[i])
	})

	m := len(forecast)
	drawSeries(s, ForecastColor, m, func(i int) (float64, float64) {
		return ForecastX(r, i, n, m), scale.Y(r, forecast[i])
	})
	return nil
}

func drawGrid(s Surface, r Rect) {
	s.SetColor(gridColor)
	s.SetLineWidth(0.5)
	for i := 0; i <= yDivisions; i++ {
		y := r.Y + float64(i)*r.Height/yDivisions
		s.MoveTo(r.X, y)
		s.LineTo(r.X+r.Width, y)
	}
	for i := 0; i <= logicalWidth; i += gridStep {
		x := LogicalX(r, float64(i))
		s.MoveTo(x, r.Y)
		s.LineTo(x, r.Y+r.Height)
	}
	s.Stroke()
}

func drawAxes(s Surface, r Rect) {
	s.SetColor(axisColor)
	s.SetLineWidth(1)
	s.MoveTo(r.X, r.Y+r.Height)
	s.LineTo(r.X, r.Y)
	s.MoveTo(r.X, r.Y+r.Height)
	s.LineTo(r.X+r.Width, r.Y+r.Height)
	s.Stroke()
}

func drawXTicks(s Surface, r Rect) {
	s.SetFontSize(labelFontSize)
	bottom := r.Y + r.Height
	for i := 0; i <= logicalWidth; i += tickStep {
		x := LogicalX(r, float64(i))
		major := i%gridStep == 0

		if major {
			s.SetColor(axisColor)
			s.MoveTo(x, bottom)
			s.LineTo(x, bottom+majorTickLen)
		} else {
			s.SetColor(minorTickColor)
			s.MoveTo(x, bottom)
			s.LineTo(x, bottom+minorTickLen)
		}
		s.Stroke()

		if major {
			s.SetColor(axisColor)
			s.Text(strconv.Itoa(i-historyUnits), x-10, bottom+20)
		}
	}
}

func drawYLabels(s Surface, r Rect, scale Scale) {
	s.SetColor(axisColor)
	s.SetFontSize(labelFontSize)
	for i := 0; i <= yDivisions; i++ {
		v := scale.Min + (scale.Max-scale.Min)*float64(i)/yDivisions
		y := r.Y + r.Height - float64(i)*r.Height/yDivisions
		s.Text(strconv.FormatFloat(v, 'f', 1, 64), r.X-30, y)
	}
}

// drawSeries strokes a polyline through n points and then marks each point.
func drawSeries(s Surface, c drawing.Color, n int, point func(i int) (float64, float64)) {
	if n == 0 {
		return
	}
	s.SetColor(c)
	s.SetLineWidth(2)

	x, y := point(0)
	s.MoveTo(x, y)
	for i := 1; i < n; i++ {
		x, y = point(i)
		s.LineTo(x, y)
	}
	s.Stroke()

	for i := 0; i < n; i++ {
		x, y = point(i)
		s.FillCircle(x, y, markerRadius)
	}
}
