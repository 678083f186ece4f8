package chart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterSurfacePaintsMarkers(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 160))
	s, err := NewRasterSurface(img)
	require.NoError(t, err)

	spec := Spec{Rect: Rect{X: 40, Y: 20, Width: 120, Height: 100}, Title: "Pressure", SeriesIndex: 0}
	require.NoError(t, Render(s, spec, []float64{1, 3, 2}, []float64{2, 2}))

	// The middle history point sits at (40+60*0.75, 20).
	got := color.RGBAModel.Convert(img.At(85, 20)).(color.RGBA)
	require.NotEqual(t, color.RGBA{}, got, "marker pixel left untouched")
	require.Greater(t, got.B, got.R, "marker should carry the blue series colour")
}
