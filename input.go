package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/GarrettArm/planckplot/internal/config"
	"github.com/GarrettArm/planckplot/internal/planck"
)

var errInvalidInput = errors.New("invalid input")

// inputFields is the raw text of the input panel.
type inputFields struct {
	Temperatures  string
	WavelengthMin string
	WavelengthMax string
	Samples       string
	Spacing       string
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errInvalidInput, fmt.Sprintf(format, args...))
}

// parseInputs turns the panel's text into the temperatures to plot and the
// request shared by all of them. Every request is validated before returning.
func parseInputs(in inputFields, limits config.LimitsConfig) ([]float64, planck.Request, error) {
	var req planck.Request

	temps, err := parseTemperatures(in.Temperatures)
	if err != nil {
		return nil, req, err
	}
	if limits.MaxCurves > 0 && len(temps) > limits.MaxCurves {
		return nil, req, invalidInput("At most %d temperatures can be plotted at once.", limits.MaxCurves)
	}

	samples, err := strconv.Atoi(strings.TrimSpace(in.Samples))
	if err != nil {
		return nil, req, invalidInput("Number of plot points %q is not an integer.", in.Samples)
	}
	if samples < limits.MinSamples {
		return nil, req, invalidInput("Should have at least %d plot points for good visual results.", limits.MinSamples)
	}
	if limits.MaxSamples > 0 && samples > limits.MaxSamples {
		return nil, req, invalidInput("At most %d plot points are supported.", limits.MaxSamples)
	}

	wlMin, err := parseFloat("Lower wavelength", in.WavelengthMin)
	if err != nil {
		return nil, req, err
	}
	wlMax, err := parseFloat("Upper wavelength", in.WavelengthMax)
	if err != nil {
		return nil, req, err
	}
	if wlMin <= 0 || wlMax <= 0 {
		return nil, req, invalidInput("Wavelengths need to be positive values. [m]")
	}
	if wlMin >= wlMax {
		return nil, req, invalidInput("Lower wavelength needs to be smaller than upper wavelength.")
	}

	spacing, err := planck.ParseSpacing(in.Spacing)
	if err != nil {
		return nil, req, invalidInput("%v", err)
	}

	req = planck.Request{
		WavelengthMin: wlMin,
		WavelengthMax: wlMax,
		Samples:       samples,
		Spacing:       spacing,
	}
	for _, t := range temps {
		r := req
		r.Temperature = t
		if err := r.Validate(); err != nil {
			return nil, planck.Request{}, fmt.Errorf("%w: %w", errInvalidInput, err)
		}
	}
	return temps, req, nil
}

func parseTemperatures(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, invalidInput("Enter at least one temperature. [Kelvin]")
	}

	temps := make([]float64, 0, len(fields))
	for _, f := range fields {
		t, err := parseFloat("Temperature", f)
		if err != nil {
			return nil, err
		}
		if t <= 0 {
			return nil, invalidInput("Temperature needs to be a positive value, got %s. [Kelvin]", f)
		}
		temps = append(temps, t)
	}
	return temps, nil
}

func parseFloat(name, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput("%s %q is not a number.", name, text)
	}
	return v, nil
}
