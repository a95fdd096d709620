// reproduction
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

import "golang.org/x/exp/rand"

// MatureMalePresent is the population-wide flag the reproduction gate
// tests. There is no pairing of hinds with stags.
func (p Parameters) MatureMalePresent(pop Population) bool {
	return pop.Any(AtLeast(p.MatureMaleAge, MaleOnly))
}

func (p Parameters) breeding(pop Population) bool {
	present := p.MatureMalePresent(pop)
	if p.Gate == GateBlockedByMale {
		return !present
	}
	return present
}

// conceptionRate is 0 for females outside both breeding brackets
func (p Parameters) conceptionRate(age int) (float64, bool) {
	switch {
	case age >= p.YoungMinAge && age <= p.YoungMaxAge:
		return p.ProbYoungReproduce, true
	case age > p.YoungMaxAge && age < p.MaxBreedingAge:
		return p.ProbMatureReproduce, true
	}
	return 0, false
}

// Reproduce returns pop followed by this year's calves. Each eligible hind
// gets one conception trial and, on success, one draw for the calf's sex.
// Calves born here are not themselves considered.
func Reproduce(pop Population, p Parameters, src rand.Source) Population {
	out := pop.clone()
	if !p.breeding(pop) {
		return out
	}

	for _, d := range pop {
		if d.Sex != Female {
			continue
		}
		rate, ok := p.conceptionRate(d.Age)
		if !ok {
			continue
		}
		if !bernoulli(rate, src) {
			continue
		}
		calf := Individual{Age: 0, Sex: Female}
		if bernoulli(p.ProbMale, src) {
			calf.Sex = Male
		}
		out = append(out, calf)
	}
	return out
}
