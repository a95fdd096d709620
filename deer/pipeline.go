// pipeline
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

// Grow ages every individual by one year.
func Grow(pop Population) Population {
	out := pop.clone()
	for i := range out {
		out[i].Age++
	}
	return out
}

// Transition keeps every snapshot of one simulated year so the census can
// see what each stage did.
type Transition struct {
	Year       int
	Start      Population
	Grown      Population
	Reproduced Population
	Survived   Population
	Harvested  Population
	Culls      HarvestTally
}

func (t Transition) Births() int {
	return len(t.Reproduced) - len(t.Grown)
}

func (t Transition) NaturalDeaths() int {
	return len(t.Reproduced) - len(t.Survived)
}

// Advance runs Growth, Reproduction, Mortality and Harvest for one year.
// Draws are taken in that stage order and, within a stage, in enumeration
// order, so a fixed source gives a fixed year.
func Advance(pop Population, p Parameters, policy HarvestPolicy, year int, src rand.Source) Transition {
	if policy == nil {
		policy = NoHarvest{}
	}
	t := Transition{Year: year, Start: pop}
	t.Grown = Grow(pop)
	t.Reproduced = Reproduce(t.Grown, p, src)
	t.Survived = NaturalDeath(t.Reproduced, p, src)
	t.Harvested, t.Culls = policy.HarvestWithTally(t.Survived, year, src)
	return t
}

// AdvanceOneYear returns next year's population.
func AdvanceOneYear(pop Population, p Parameters, policy HarvestPolicy, year int, src rand.Source) Population {
	return Advance(pop, p, policy, year, src).Harvested
}
