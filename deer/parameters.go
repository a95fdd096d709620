// parameters
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package deer

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameters = errors.New("invalid model parameters")
	ErrInvalidPolicy     = errors.New("invalid harvest policy")
)

// ReproductionGate sets the polarity of the mature-male presence test.
type ReproductionGate int

const (
	// GateRequiresMale breeds only when a mature male is present.
	GateRequiresMale ReproductionGate = iota
	// GateBlockedByMale breeds only when no mature male is present.
	GateBlockedByMale
)

func (g ReproductionGate) String() string {
	if g == GateBlockedByMale {
		return "blockedByMale"
	}
	return "requiresMale"
}

// Parameters is the fixed bundle of biological rates for one run.
type Parameters struct {
	ProbMale   float64 // p_o,m sex ratio at birth
	ProbFemale float64 // p_o,f always 1 - ProbMale

	ProbYoungReproduce  float64
	ProbMatureReproduce float64

	// Young females are YoungMinAge..YoungMaxAge inclusive, mature females
	// are older than YoungMaxAge and younger than MaxBreedingAge.
	YoungMinAge    int
	YoungMaxAge    int
	MaxBreedingAge int
	MatureMaleAge  int // a male at least this old opens (or closes) the gate
	Gate           ReproductionGate

	MaxCapacityImpact  float64 // c
	CapacityCurveSlope float64 // a
	MaximumIndividuals int     // i_max

	Mortality MortalityCurve
}

// DefaultParameters returns the baseline calibration. The capacity shape is
// left for the caller since it depends on the range being modelled.
func DefaultParameters() Parameters {
	return Parameters{
		ProbMale:            0.52,
		ProbFemale:          0.48,
		ProbYoungReproduce:  0.3,
		ProbMatureReproduce: 0.9,
		YoungMinAge:         1,
		YoungMaxAge:         1,
		MaxBreedingAge:      12,
		MatureMaleAge:       1,
		Gate:                GateRequiresMale,
		MaximumIndividuals:  1,
		Mortality:           BaselineMortality(),
	}
}

func invalid(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, a...))
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// Validate rejects a bundle that could not describe a population. It runs
// once before any simulation starts.
func (p Parameters) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"probMale", p.ProbMale},
		{"probFemale", p.ProbFemale},
		{"probYoungReproduce", p.ProbYoungReproduce},
		{"probMatureReproduce", p.ProbMatureReproduce},
	}
	for _, pr := range probs {
		if !isProbability(pr.v) {
			return invalid("%s %g is outside [0,1]", pr.name, pr.v)
		}
	}
	if math.Abs(p.ProbMale+p.ProbFemale-1) > 1e-9 {
		return invalid("probMale %g and probFemale %g do not sum to 1", p.ProbMale, p.ProbFemale)
	}
	if p.MaximumIndividuals <= 0 {
		return invalid("maximumIndividuals must be positive, got %d", p.MaximumIndividuals)
	}
	if p.MaxCapacityImpact < 0 || math.IsNaN(p.MaxCapacityImpact) {
		return invalid("maxCapacityImpact must be non-negative, got %g", p.MaxCapacityImpact)
	}
	if p.CapacityCurveSlope < 0 || math.IsNaN(p.CapacityCurveSlope) {
		return invalid("capacityCurveSlope must be non-negative, got %g", p.CapacityCurveSlope)
	}
	if p.YoungMinAge < 1 || p.YoungMaxAge < p.YoungMinAge {
		return invalid("young breeding ages %d..%d are not a valid range", p.YoungMinAge, p.YoungMaxAge)
	}
	if p.MaxBreedingAge <= p.YoungMaxAge {
		return invalid("maxBreedingAge %d must exceed youngMaxAge %d", p.MaxBreedingAge, p.YoungMaxAge)
	}
	if p.MatureMaleAge < 0 {
		return invalid("matureMaleAge must be non-negative, got %d", p.MatureMaleAge)
	}
	if p.Gate != GateRequiresMale && p.Gate != GateBlockedByMale {
		return invalid("unknown reproduction gate %d", p.Gate)
	}
	return p.Mortality.Validate()
}

// WithProbMale sets the sex ratio keeping the two halves complementary.
func (p Parameters) WithProbMale(pm float64) Parameters {
	p.ProbMale = pm
	p.ProbFemale = 1 - pm
	return p
}
