package planck

import (
	"fmt"
	"math"
	"strings"
)

// Spacing selects how wavelengths are distributed across a domain.
type Spacing int

const (
	Linear Spacing = iota
	Logarithmic
)

func (s Spacing) String() string {
	switch s {
	case Linear:
		return "Linear"
	case Logarithmic:
		return "Logarithmic"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing accepts the names returned by Spacing.String, case-insensitively.
func ParseSpacing(name string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "logarithmic", "log":
		return Logarithmic, nil
	}
	return Linear, fmt.Errorf("unknown spacing %q", name)
}

// Sampler produces n wavelengths covering [min, max], first and last exactly
// at the bounds.
type Sampler interface {
	Sample(min, max float64, n int) []float64
}

// SamplerFor returns the sampler implementing s.
func SamplerFor(s Spacing) (Sampler, error) {
	switch s {
	case Linear:
		return LinearSampler{}, nil
	case Logarithmic:
		return LogSampler{}, nil
	}
	return nil, fmt.Errorf("unknown spacing %v", s)
}

// LinearSampler spaces samples evenly.
type LinearSampler struct{}

func (LinearSampler) Sample(min, max float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// LogSampler spaces samples geometrically, so each decade gets the same
// number of points.
type LogSampler struct{}

func (LogSampler) Sample(min, max float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = min * math.Pow(max/min, t)
	}
	out[0] = min
	out[n-1] = max
	return out
}
