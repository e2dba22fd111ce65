// Package planck evaluates Planck's law for black-body radiation over a
// sampled wavelength domain.
package planck

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants (SI, CODATA exact values).
const (
	Planck    = 6.62607015e-34 // J s
	Light     = 299792458.0    // m/s
	Boltzmann = 1.380649e-23   // J/K

	// WienDisplacement is Wien's displacement constant in m K.
	WienDisplacement = 2.897771955e-3
	// StefanBoltzmann is the Stefan–Boltzmann constant in W m^-2 K^-4.
	StefanBoltzmann = 5.670374419e-8

	// MeterToMicrometer converts wavelengths for display.
	MeterToMicrometer = 1.0e6
)

// Above maxExponent the radiance is taken as zero; math.Exp overflows just
// past 709.
const maxExponent = 700

// MinSamples is the smallest sample count that spans both ends of a domain.
const MinSamples = 2

var (
	ErrInvalidRequest         = errors.New("invalid curve request")
	ErrNonPositiveTemperature = errors.New("temperature must be a positive number of Kelvin")
	ErrNonPositiveWavelength  = errors.New("wavelengths must be positive")
	ErrWavelengthRange        = errors.New("lower wavelength must be smaller than upper wavelength")
	ErrTooFewSamples          = fmt.Errorf("sample count must be at least %d", MinSamples)
	ErrOutOfRange             = errors.New("radiance is not representable for these values")
)

// Point is one sample of a curve.
type Point struct {
	Wavelength float64 // m
	Radiance   float64 // W sr^-1 m^-3
}

// Request describes a single curve to compute.
type Request struct {
	Temperature   float64 // K
	WavelengthMin float64 // m
	WavelengthMax float64 // m
	Samples       int
	Spacing       Spacing
}

// Validate reports whether r can be computed. Returned errors wrap
// ErrInvalidRequest and one of the more specific sentinels.
func (r Request) Validate() error {
	switch {
	case !finite(r.Temperature) || r.Temperature <= 0:
		return invalid(ErrNonPositiveTemperature)
	case !finite(r.WavelengthMin) || !finite(r.WavelengthMax) || r.WavelengthMin <= 0 || r.WavelengthMax <= 0:
		return invalid(ErrNonPositiveWavelength)
	case r.WavelengthMin >= r.WavelengthMax:
		return invalid(ErrWavelengthRange)
	case r.Samples < MinSamples:
		return invalid(ErrTooFewSamples)
	}
	if _, err := SamplerFor(r.Spacing); err != nil {
		return invalid(err)
	}
	return nil
}

// Curve is the sampled spectral radiance for one temperature.
type Curve struct {
	Temperature float64
	Points      []Point
}

// Wavelengths returns the sampled wavelengths in order.
func (c Curve) Wavelengths() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Wavelength
	}
	return out
}

// Radiances returns the sampled radiance values in order.
func (c Curve) Radiances() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Radiance
	}
	return out
}

// Peak returns the sample with the highest radiance. Ties keep the first.
func (c Curve) Peak() Point {
	var peak Point
	for i, p := range c.Points {
		if i == 0 || p.Radiance > peak.Radiance {
			peak = p
		}
	}
	return peak
}

// SpectralRadiance returns the black-body spectral radiance in W sr^-1 m^-3
// at wavelength (m) and temperature (K).
func SpectralRadiance(wavelength, temperature float64) float64 {
	x := (Planck * Light) / (wavelength * Boltzmann * temperature)
	if x > maxExponent {
		return 0
	}
	return (2.0 * Planck * Light * Light) / (math.Pow(wavelength, 5) * math.Expm1(x))
}

// WienPeak returns the wavelength (m) of maximum spectral radiance.
func WienPeak(temperature float64) float64 {
	return WienDisplacement / temperature
}

// RadiantExitance returns the total power emitted per unit area, σT⁴.
func RadiantExitance(temperature float64) float64 {
	t2 := temperature * temperature
	return StefanBoltzmann * t2 * t2
}

// Compute samples Planck's law for r.
func Compute(r Request) (Curve, error) {
	if err := r.Validate(); err != nil {
		return Curve{}, err
	}
	sampler, _ := SamplerFor(r.Spacing)
	wavelengths := sampler.Sample(r.WavelengthMin, r.WavelengthMax, r.Samples)
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return Curve{}, invalid(fmt.Errorf("%w: domain too narrow for %d samples", ErrWavelengthRange, r.Samples))
		}
	}

	points := make([]Point, len(wavelengths))
	for i, wl := range wavelengths {
		radiance := SpectralRadiance(wl, r.Temperature)
		if !finite(radiance) {
			return Curve{}, invalid(fmt.Errorf("%w: wavelength %g m at %g K", ErrOutOfRange, wl, r.Temperature))
		}
		points[i] = Point{Wavelength: wl, Radiance: radiance}
	}
	return Curve{Temperature: r.Temperature, Points: points}, nil
}

// ComputeAll computes one curve per temperature over the domain in base.
// Every request is validated before any curve is computed.
func ComputeAll(temperatures []float64, base Request) ([]Curve, error) {
	if len(temperatures) == 0 {
		return nil, invalid(ErrNonPositiveTemperature)
	}
	reqs := make([]Request, len(temperatures))
	for i, t := range temperatures {
		r := base
		r.Temperature = t
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("temperature %g K: %w", t, err)
		}
		reqs[i] = r
	}

	curves := make([]Curve, 0, len(reqs))
	for _, r := range reqs {
		c, err := Compute(r)
		if err != nil {
			return nil, fmt.Errorf("temperature %g K: %w", r.Temperature, err)
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
