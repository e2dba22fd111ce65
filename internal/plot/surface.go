// Package plot renders black-body curves with go-chart and exports them as
// images.
package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/GarrettArm/planckplot/internal/planck"
)

const (
	xAxisName = "Wavelength [um]"
	yAxisName = "Spectral radiance [W sr^-1 m^-3]"
)

// Surface holds the curves currently on screen and renders them onto a
// shared set of axes.
type Surface struct {
	Title     string
	Width     int
	Height    int
	MaxCurves int

	curves []planck.Curve
}

func NewSurface(width, height, maxCurves int) *Surface {
	return &Surface{
		Title:     "Black body radiation",
		Width:     width,
		Height:    height,
		MaxCurves: maxCurves,
	}
}

// Plot replaces the displayed curves, or appends to them when hold is set.
// Once MaxCurves is exceeded the oldest curves are dropped.
func (s *Surface) Plot(curves []planck.Curve, hold bool) {
	if !hold {
		s.curves = nil
	}
	s.curves = append(s.curves, curves...)
	if s.MaxCurves > 0 && len(s.curves) > s.MaxCurves {
		s.curves = append([]planck.Curve(nil), s.curves[len(s.curves)-s.MaxCurves:]...)
	}
}

func (s *Surface) Clear() {
	s.curves = nil
}

// Curves returns the displayed curves, oldest first.
func (s *Surface) Curves() []planck.Curve {
	return s.curves
}

func (s *Surface) Empty() bool {
	return len(s.curves) == 0
}

// Chart builds the go-chart description of the current view.
func (s *Surface) Chart() *chart.Chart {
	series := make([]chart.Series, 0, len(s.curves))
	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := 0.0

	for i, c := range s.curves {
		xs := c.Wavelengths()
		for j := range xs {
			xs[j] *= planck.MeterToMicrometer
		}
		ys := c.Radiances()

		minX = math.Min(minX, xs[0])
		maxX = math.Max(maxX, xs[len(xs)-1])
		for _, y := range ys {
			if y > maxY && !math.IsInf(y, 0) {
				maxY = y
			}
		}

		series = append(series, chart.ContinuousSeries{
			Name:    CurveName(c),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: seriesColor(i),
			},
		})
	}

	if maxY <= 0 {
		maxY = 1
	}

	ch := &chart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           xAxisName,
			ValueFormatter: func(v interface{}) string { return formatValue(v, "%.4g") },
			Range:          &chart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			ValueFormatter: func(v interface{}) string { return formatValue(v, "%.2e") },
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY * 1.05},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

// Image renders the current view as a raster image with a caption listing
// each curve's peak. An empty surface yields a blank placeholder.
func (s *Surface) Image() (image.Image, error) {
	if s.Empty() {
		return blank(s.Width, s.Height), nil
	}

	var buf bytes.Buffer
	if err := s.Chart().Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}
	return drawCaption(img, s.captionLines()), nil
}

func (s *Surface) captionLines() []string {
	lines := make([]string, 0, len(s.curves))
	for _, c := range s.curves {
		peak := c.Peak()
		lines = append(lines, fmt.Sprintf("%s: peak %.4g um, exitance %.3g W/m^2",
			CurveName(c), peak.Wavelength*planck.MeterToMicrometer, planck.RadiantExitance(c.Temperature)))
	}
	return lines
}

// CurveName is the legend label for c.
func CurveName(c planck.Curve) string {
	return fmt.Sprintf("%g K", c.Temperature)
}

func formatValue(v interface{}, format string) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf(format, f)
	}
	return fmt.Sprint(v)
}

func seriesColor(i int) drawing.Color {
	colors := []drawing.Color{
		{R: 214, G: 39, B: 40, A: 255},  // Red
		{R: 31, G: 119, B: 180, A: 255}, // Blue
		{R: 44, G: 160, B: 44, A: 255},  // Green
		{R: 255, G: 127, B: 14, A: 255}, // Orange
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
		{R: 227, G: 119, B: 194, A: 255}, // Pink
		{R: 127, G: 127, B: 127, A: 255}, // Gray
		{R: 188, G: 189, B: 34, A: 255},
		{R: 23, G: 190, B: 207, A: 255}, // Cyan
		{R: 0, G: 0, B: 128, A: 255},    // Navy
		{R: 128, G: 0, B: 0, A: 255},    // Maroon
	}
	return colors[i%len(colors)]
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
