package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GarrettArm/planckplot/internal/config"
	"github.com/GarrettArm/planckplot/internal/plot"
)

func testConfig() *config.Config {
	return &config.Config{
		Window: config.WindowConfig{Width: 800, Height: 600},
		Chart:  config.ChartConfig{Width: 480, Height: 300},
		Defaults: config.DefaultsConfig{
			Temperatures:  "288.0",
			WavelengthMin: 5e-6,
			WavelengthMax: 20e-6,
			Samples:       300,
			Spacing:       "linear",
		},
		Limits: config.LimitsConfig{MinSamples: 100, MaxSamples: 10000, MaxCurves: 3},
		Log:    config.LogConfig{Level: zerolog.Disabled},
	}
}

func newTestPlanckWindow(t *testing.T) *PlanckWindow {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	p := newPlanckWindow(w, testConfig())
	w.SetContent(p.content)
	return p
}

func temperatures(p *PlanckWindow) []float64 {
	var out []float64
	for _, c := range p.surface.Curves() {
		out = append(out, c.Temperature)
	}
	return out
}

func TestPlanckWindowInitialPlot(t *testing.T) {
	p := newTestPlanckWindow(t)

	assert.Equal(t, []float64{288}, temperatures(p))
	assert.Len(t, p.surface.Curves()[0].Points, 300)
	require.NotNil(t, p.plotImage.Image)
	assert.Equal(t, 480, p.plotImage.Image.Bounds().Dx())
	assert.False(t, p.errorLabel.Visible())
	assert.Contains(t, p.statusLabel.Text, "288 K")
	assert.Equal(t, "Linear", p.spacingSelect.Selected)
}

func TestPlanckWindowRefreshMultipleTemperatures(t *testing.T) {
	p := newTestPlanckWindow(t)

	p.tempEntry.SetText("3000, 4000")
	p.wlMinEntry.SetText("1e-7")
	p.wlMaxEntry.SetText("3e-6")
	p.samplesEntry.SetText("500")
	test.Tap(p.refreshButton)

	assert.Equal(t, []float64{3000, 4000}, temperatures(p))
	for _, c := range p.surface.Curves() {
		assert.Len(t, c.Points, 500)
	}
	assert.Equal(t, 2, strings.Count(p.statusLabel.Text, "\n")+1)
}

func TestPlanckWindowRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		edit func(p *PlanckWindow)
	}{
		{"negative temperature", func(p *PlanckWindow) { p.tempEntry.SetText("-10") }},
		{"inverted range", func(p *PlanckWindow) { p.wlMinEntry.SetText("3e-5") }},
		{"too few samples", func(p *PlanckWindow) { p.samplesEntry.SetText("10") }},
		{"garbage", func(p *PlanckWindow) { p.wlMaxEntry.SetText("abc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanckWindow(t)
			before := p.plotImage.Image
			status := p.statusLabel.Text

			tt.edit(p)
			test.Tap(p.refreshButton)

			assert.True(t, p.errorLabel.Visible())
			assert.NotEmpty(t, p.errorLabel.Text)
			assert.Equal(t, []float64{288}, temperatures(p))
			assert.True(t, before == p.plotImage.Image, "plot was redrawn")
			assert.Equal(t, status, p.statusLabel.Text)
		})
	}
}

func TestPlanckWindowRejectsUnrepresentableRadiance(t *testing.T) {
	p := newTestPlanckWindow(t)
	before := p.plotImage.Image

	p.tempEntry.SetText("1e300")
	p.wlMinEntry.SetText("1e-66")
	p.wlMaxEntry.SetText("1e-65")
	test.Tap(p.refreshButton)

	assert.True(t, p.errorLabel.Visible())
	assert.Contains(t, p.errorLabel.Text, "not representable")
	assert.Equal(t, []float64{288}, temperatures(p))
	assert.True(t, before == p.plotImage.Image, "plot was redrawn")
}

func TestPlanckWindowErrorClearsOnValidRefresh(t *testing.T) {
	p := newTestPlanckWindow(t)

	p.tempEntry.SetText("0")
	test.Tap(p.refreshButton)
	require.True(t, p.errorLabel.Visible())

	p.tempEntry.SetText("500")
	test.Tap(p.refreshButton)
	assert.False(t, p.errorLabel.Visible())
	assert.Equal(t, []float64{500}, temperatures(p))
}

func TestPlanckWindowHoldAndClear(t *testing.T) {
	p := newTestPlanckWindow(t)
	p.holdCheck.SetChecked(true)

	p.tempEntry.SetText("300")
	test.Tap(p.refreshButton)
	assert.Equal(t, []float64{288, 300}, temperatures(p))

	p.tempEntry.SetText("310 320")
	test.Tap(p.refreshButton)
	assert.Equal(t, []float64{300, 310, 320}, temperatures(p))

	test.Tap(p.clearButton)
	assert.Empty(t, p.surface.Curves())
	assert.Equal(t, "No curves plotted.", p.statusLabel.Text)
	require.NotNil(t, p.plotImage.Image)
}

func TestPlanckWindowLogarithmicSpacing(t *testing.T) {
	p := newTestPlanckWindow(t)

	p.wlMinEntry.SetText("1e-6")
	p.wlMaxEntry.SetText("1e-3")
	p.samplesEntry.SetText("301")
	p.spacingSelect.SetSelected("Logarithmic")
	test.Tap(p.refreshButton)

	wl := p.surface.Curves()[0].Wavelengths()
	require.Len(t, wl, 301)
	assert.InEpsilon(t, 1e-5, wl[100], 1e-9)
}

type bufferWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (b *bufferWriter) Close() error {
	b.closed = true
	return nil
}

func (b *bufferWriter) URI() fyne.URI {
	return b.uri
}

func TestPlanckWindowExport(t *testing.T) {
	p := newTestPlanckWindow(t)
	dir := t.TempDir()

	svg := &bufferWriter{uri: storage.NewFileURI(filepath.Join(dir, "plot.svg"))}
	require.NoError(t, p.export(svg))
	assert.True(t, svg.closed)
	assert.Contains(t, svg.String(), "<svg")

	bmp := &bufferWriter{uri: storage.NewFileURI(filepath.Join(dir, "plot.bmp"))}
	err := p.export(bmp)
	assert.ErrorIs(t, err, plot.ErrUnsupportedFormat)
	assert.True(t, bmp.closed)

	test.Tap(p.clearButton)
	empty := &bufferWriter{uri: storage.NewFileURI(filepath.Join(dir, "plot.png"))}
	assert.ErrorIs(t, p.export(empty), plot.ErrNothingToExport)
}
