package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GarrettArm/planckplot/internal/config"
	"github.com/GarrettArm/planckplot/internal/planck"
)

var testLimits = config.LimitsConfig{MinSamples: 100, MaxSamples: 10000, MaxCurves: 4}

func validFields() inputFields {
	return inputFields{
		Temperatures:  "288.0",
		WavelengthMin: "5.0e-6",
		WavelengthMax: "20.0e-6",
		Samples:       "300",
		Spacing:       "Linear",
	}
}

func TestParseInputs(t *testing.T) {
	in := validFields()
	in.Temperatures = " 3000, 4000;5000  6000 "
	in.Spacing = "Logarithmic"

	temps, req, err := parseInputs(in, testLimits)
	require.NoError(t, err)
	assert.Equal(t, []float64{3000, 4000, 5000, 6000}, temps)
	assert.Equal(t, planck.Request{
		WavelengthMin: 5e-6,
		WavelengthMax: 20e-6,
		Samples:       300,
		Spacing:       planck.Logarithmic,
	}, req)
}

func TestParseInputsRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*inputFields)
		message string
	}{
		{"no temperature", func(in *inputFields) { in.Temperatures = " , " }, "at least one temperature"},
		{"negative temperature", func(in *inputFields) { in.Temperatures = "300, -1" }, "positive value"},
		{"zero temperature", func(in *inputFields) { in.Temperatures = "0" }, "positive value"},
		{"temperature not a number", func(in *inputFields) { in.Temperatures = "hot" }, "not a number"},
		{"infinite temperature", func(in *inputFields) { in.Temperatures = "Inf" }, "not a number"},
		{"too many temperatures", func(in *inputFields) { in.Temperatures = "1 2 3 4 5" }, "At most 4 temperatures"},
		{"samples not an integer", func(in *inputFields) { in.Samples = "3.5" }, "not an integer"},
		{"too few samples", func(in *inputFields) { in.Samples = "99" }, "at least 100 plot points"},
		{"too many samples", func(in *inputFields) { in.Samples = "10001" }, "At most 10000"},
		{"wavelength not a number", func(in *inputFields) { in.WavelengthMax = "far" }, "Upper wavelength"},
		{"zero wavelength", func(in *inputFields) { in.WavelengthMin = "0" }, "positive values"},
		{"inverted range", func(in *inputFields) { in.WavelengthMin, in.WavelengthMax = "2e-5", "5e-6" }, "smaller than upper"},
		{"empty range", func(in *inputFields) { in.WavelengthMax = in.WavelengthMin }, "smaller than upper"},
		{"unknown spacing", func(in *inputFields) { in.Spacing = "cubic" }, "unknown spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFields()
			tt.mutate(&in)

			temps, _, err := parseInputs(in, testLimits)
			require.Error(t, err)
			assert.Nil(t, temps)
			assert.ErrorIs(t, err, errInvalidInput)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
