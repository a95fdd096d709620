// foundation
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
	"fmt"

	"golang.org/x/exp/rand"
)

// Spread decides how adults are distributed over the adult ages of a
// foundation herd.
type Spread int

const (
	// SpreadEven puts the same number at every adult age and drops the
	// remainder of the division.
	SpreadEven Spread = iota
	// SpreadRandom draws up to maxPerAgeDraw per age and gives whatever
	// is left to the oldest age.
	SpreadRandom
)

const maxPerAgeDraw = 10

func (s Spread) String() string {
	if s == SpreadRandom {
		return "random"
	}
	return "even"
}

// FoundationHerd describes the starting population of every sample.
type FoundationHerd struct {
	Stags       int
	Hinds       int
	Calves      int
	AdultMinAge int
	AdultMaxAge int
	CalfMaxAge  int // calves are split equally over ages 0..CalfMaxAge and by sex
	Spread      Spread
}

func (f FoundationHerd) Validate() error {
	if f.Stags < 0 || f.Hinds < 0 || f.Calves < 0 {
		return fmt.Errorf("%w: foundation herd totals must be non-negative", ErrInvalidParameters)
	}
	if f.CalfMaxAge < 0 {
		return fmt.Errorf("%w: foundation calfMaxAge must be non-negative", ErrInvalidParameters)
	}
	if f.AdultMinAge <= f.CalfMaxAge || f.AdultMaxAge < f.AdultMinAge {
		return fmt.Errorf("%w: foundation adult ages %d..%d must follow the calf ages 0..%d",
			ErrInvalidParameters, f.AdultMinAge, f.AdultMaxAge, f.CalfMaxAge)
	}
	return nil
}

// spreadOver returns the count at each of n ages
func (f FoundationHerd) spreadOver(total, n int, r *rand.Rand) []int {
	counts := make([]int, n)
	if f.Spread == SpreadEven {
		for i := range counts {
			counts[i] = total / n
		}
		return counts
	}
	left := total
	for i := 0; i < n-1; i++ {
		v := r.Intn(min(maxPerAgeDraw, left) + 1)
		counts[i] = v
		left -= v
	}
	counts[n-1] = left
	return counts
}

// Build makes the foundation population: stags, then hinds, then calves.
func (f FoundationHerd) Build(src rand.Source) Population {
	r := rand.New(src)
	n := f.AdultMaxAge - f.AdultMinAge + 1

	var pop Population
	for i, c := range f.spreadOver(f.Stags, n, r) {
		pop = append(pop, NewCohort(c, f.AdultMinAge+i, Male)...)
	}
	for i, c := range f.spreadOver(f.Hinds, n, r) {
		pop = append(pop, NewCohort(c, f.AdultMinAge+i, Female)...)
	}

	perClass := f.Calves / (2 * (f.CalfMaxAge + 1))
	for age := 0; age <= f.CalfMaxAge; age++ {
		for i := 0; i < perClass; i++ {
			pop = append(pop, Individual{Age: age, Sex: Female}, Individual{Age: age, Sex: Male})
		}
	}
	return pop
}
