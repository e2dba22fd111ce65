package main

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/GarrettArm/planckplot/internal/config"
	"github.com/GarrettArm/planckplot/internal/planck"
	"github.com/GarrettArm/planckplot/internal/plot"
)

// PlanckWindow is the single screen of the application: the plot on top and
// the input panel below it.
type PlanckWindow struct {
	window  fyne.Window
	limits  config.LimitsConfig
	surface *plot.Surface
	content fyne.CanvasObject

	plotImage *canvas.Image

	tempEntry     *widget.Entry
	wlMinEntry    *widget.Entry
	wlMaxEntry    *widget.Entry
	samplesEntry  *widget.Entry
	spacingSelect *widget.Select
	holdCheck     *widget.Check

	refreshButton *widget.Button
	clearButton   *widget.Button
	saveButton    *widget.Button

	errorLabel  *widget.Label
	statusLabel *widget.Label
}

func NewPlanckWindow(window fyne.Window, cfg *config.Config) fyne.CanvasObject {
	return newPlanckWindow(window, cfg).content
}

func newPlanckWindow(window fyne.Window, cfg *config.Config) *PlanckWindow {
	p := &PlanckWindow{
		window:  window,
		limits:  cfg.Limits,
		surface: plot.NewSurface(cfg.Chart.Width, cfg.Chart.Height, cfg.Limits.MaxCurves),
	}

	p.plotImage = canvas.NewImageFromImage(nil)
	p.plotImage.FillMode = canvas.ImageFillContain
	p.plotImage.SetMinSize(fyne.NewSize(float32(cfg.Chart.Width)/2, float32(cfg.Chart.Height)/2))

	submit := func(string) { p.refresh() }

	p.tempEntry = widget.NewEntry()
	p.tempEntry.SetText(cfg.Defaults.Temperatures)
	p.tempEntry.SetPlaceHolder("e.g. 3000, 4000, 5778")
	p.tempEntry.OnSubmitted = submit

	p.wlMinEntry = widget.NewEntry()
	p.wlMinEntry.SetText(formatFloat(cfg.Defaults.WavelengthMin))
	p.wlMinEntry.OnSubmitted = submit

	p.wlMaxEntry = widget.NewEntry()
	p.wlMaxEntry.SetText(formatFloat(cfg.Defaults.WavelengthMax))
	p.wlMaxEntry.OnSubmitted = submit

	p.samplesEntry = widget.NewEntry()
	p.samplesEntry.SetText(strconv.Itoa(cfg.Defaults.Samples))
	p.samplesEntry.OnSubmitted = submit

	p.spacingSelect = widget.NewSelect([]string{planck.Linear.String(), planck.Logarithmic.String()}, nil)
	spacing, err := planck.ParseSpacing(cfg.Defaults.Spacing)
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring configured spacing")
	}
	p.spacingSelect.SetSelected(spacing.String())

	p.holdCheck = widget.NewCheck("Hold previous curves", nil)

	p.refreshButton = widget.NewButton("Refresh plot", p.refresh)
	p.refreshButton.Importance = widget.HighImportance
	p.clearButton = widget.NewButton("Clear", p.clear)
	p.saveButton = widget.NewButton("Save…", p.save)

	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.errorLabel.Hide()

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("Temperatures [K]", p.tempEntry),
		widget.NewFormItem("Wavelength [m]", container.NewGridWithColumns(3,
			p.wlMinEntry, widget.NewLabelWithStyle("to", fyne.TextAlignCenter, fyne.TextStyle{}), p.wlMaxEntry)),
		widget.NewFormItem("Number of plot points", container.NewGridWithColumns(3,
			p.samplesEntry, p.spacingSelect, p.holdCheck)),
	)

	buttons := container.NewHBox(p.refreshButton, p.clearButton, p.saveButton)
	controls := container.NewVBox(form, buttons, p.errorLabel, p.statusLabel)

	p.content = container.NewBorder(nil, controls, nil, nil, p.plotImage)

	p.refresh()
	return p
}

func (p *PlanckWindow) fields() inputFields {
	return inputFields{
		Temperatures:  p.tempEntry.Text,
		WavelengthMin: p.wlMinEntry.Text,
		WavelengthMax: p.wlMaxEntry.Text,
		Samples:       p.samplesEntry.Text,
		Spacing:       p.spacingSelect.Selected,
	}
}

// refresh validates the inputs, computes one curve per temperature and
// redraws the plot. Invalid input leaves the current plot untouched.
func (p *PlanckWindow) refresh() {
	temps, base, err := parseInputs(p.fields(), p.limits)
	if err != nil {
		p.showInputError(err)
		return
	}

	curves, err := planck.ComputeAll(temps, base)
	if err != nil {
		p.showInputError(err)
		return
	}

	p.errorLabel.Hide()
	p.surface.Plot(curves, p.holdCheck.Checked)
	log.Debug().
		Floats64("temperatures", temps).
		Float64("wavelength_min", base.WavelengthMin).
		Float64("wavelength_max", base.WavelengthMax).
		Int("samples", base.Samples).
		Stringer("spacing", base.Spacing).
		Int("curves_shown", len(p.surface.Curves())).
		Msg("Recomputed curves")

	p.redrawPlot()
}

func (p *PlanckWindow) clear() {
	p.surface.Clear()
	p.errorLabel.Hide()
	p.redrawPlot()
}

func (p *PlanckWindow) redrawPlot() {
	img, err := p.surface.Image()
	if err != nil {
		log.Error().Err(err).Msg("Failed to render plot")
		dialog.ShowError(err, p.window)
		return
	}
	p.plotImage.Image = img
	p.plotImage.Refresh()
	p.statusLabel.SetText(p.status())
}

func (p *PlanckWindow) status() string {
	curves := p.surface.Curves()
	if len(curves) == 0 {
		return "No curves plotted."
	}
	lines := make([]string, len(curves))
	for i, c := range curves {
		lines[i] = fmt.Sprintf("%s: sampled peak %.4g µm (Wien %.4g µm), radiant exitance %.3g W/m²",
			plot.CurveName(c),
			c.Peak().Wavelength*planck.MeterToMicrometer,
			planck.WienPeak(c.Temperature)*planck.MeterToMicrometer,
			planck.RadiantExitance(c.Temperature))
	}
	return strings.Join(lines, "\n")
}

func (p *PlanckWindow) showInputError(err error) {
	log.Warn().Err(err).Msg("Rejected input")
	p.errorLabel.SetText(err.Error())
	p.errorLabel.Show()
}

func (p *PlanckWindow) save() {
	if p.surface.Empty() {
		dialog.ShowInformation("Save plot", "No curves to save. Refresh the plot first.", p.window)
		return
	}

	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			p.showExportError(err)
			return
		}
		if wc == nil {
			return
		}
		p.export(wc)
	}, p.window)
	fs.SetFileName(plot.DefaultFileName)
	fs.SetFilter(storage.NewExtensionFileFilter(plot.SupportedExtensions))
	fs.Show()
}

// export writes the current plot to wc, picking the format from the file
// extension. A failed export removes the partial file.
func (p *PlanckWindow) export(wc fyne.URIWriteCloser) error {
	uri := wc.URI()
	err := p.surface.Export(wc, uri.Extension())
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", uri.Name(), cerr)
	}
	if err != nil {
		if derr := storage.Delete(uri); derr != nil {
			log.Debug().Err(derr).Str("uri", uri.String()).Msg("Could not remove partial export")
		}
		p.showExportError(err)
		return err
	}

	log.Info().Str("uri", uri.String()).Int("curves", len(p.surface.Curves())).Msg("Saved plot")
	return nil
}

func (p *PlanckWindow) showExportError(err error) {
	log.Error().Err(err).Msg("Failed to save plot")
	dialog.ShowError(err, p.window)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
