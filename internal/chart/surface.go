package chart

import (
	"fmt"
	"image"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Surface is the 2D vector target the renderer draws on. Coordinates are pixels,
// origin top-left.
type Surface interface {
	SetColor(c drawing.Color)
	SetLineWidth(w float64)
	SetFontSize(size float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path with the current colour and line width, then clears it.
	Stroke()
	FillCircle(x, y, radius float64)
	Text(body string, x, y float64)
}

// RasterSurface draws onto an RGBA image through go-chart's raster graphic context.
type RasterSurface struct {
	gc    *drawing.RasterGraphicContext
	color drawing.Color
}

// NewRasterSurface wraps img. Text uses go-chart's bundled default font.
func NewRasterSurface(img *image.RGBA) (*RasterSurface, error) {
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("raster context: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	gc.SetFont(font)
	gc.BeginPath()

	s := &RasterSurface{gc: gc}
	s.SetColor(drawing.ColorBlack)
	s.SetLineWidth(1)
	return s, nil
}

func (s *RasterSurface) SetColor(c drawing.Color) {
	s.color = c
	s.gc.SetStrokeColor(c)
	s.gc.SetFillColor(c)
}

func (s *RasterSurface) SetLineWidth(w float64) { s.gc.SetLineWidth(w) }

func (s *RasterSurface) SetFontSize(size float64) { s.gc.SetFontSize(size) }

func (s *RasterSurface) MoveTo(x, y float64) { s.gc.MoveTo(x, y) }

func (s *RasterSurface) LineTo(x, y float64) { s.gc.LineTo(x, y) }

func (s *RasterSurface) Stroke() {
	s.gc.Stroke()
	s.gc.BeginPath()
}

func (s *RasterSurface) FillCircle(x, y, radius float64) {
	s.gc.BeginPath()
	s.gc.ArcTo(x, y, radius, radius, 0, 2*math.Pi)
	s.gc.Close()
	s.gc.Fill()
	s.gc.BeginPath()
}

func (s *RasterSurface) Text(body string, x, y float64) {
	s.gc.SetFillColor(s.color)
	s.gc.FillStringAt(body, x, y)
	s.gc.BeginPath()
}
