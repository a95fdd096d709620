// census project census.go
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

package census

import (
	"github.com/jakemikulin/red-deer-model/deer"
)

// Classes are the reporting classes. Calves are ages 0..CalfMaxAge, stags
// and hinds are everything older.
type Classes struct {
	CalfMaxAge int
}

func (c Classes) calves() deer.Cohort { return deer.AgeRange(0, c.CalfMaxAge, deer.EitherSex) }
func (c Classes) stags() deer.Cohort  { return deer.OlderThan(c.CalfMaxAge, deer.MaleOnly) }
func (c Classes) hinds() deer.Cohort  { return deer.OlderThan(c.CalfMaxAge, deer.FemaleOnly) }

// Record is one sample's state at the end of one year.
type Record struct {
	Sample      int   `json:"sample"`
	Year        int   `json:"year"`
	Individuals int   `json:"individuals"`
	Stags       int   `json:"stags"`
	Hinds       int   `json:"hinds"`
	Calves      int   `json:"calves"`
	Births      int   `json:"births"`
	Deaths      int   `json:"naturalDeaths"`
	Harvested   int   `json:"harvested"`
	AgeDist     []int `json:"ageDistribution"`

	MeanAge float64 `json:"meanAge"`

	// Percent of each class lost to natural death this year
	CalvesDiedPct float64 `json:"calvesDiedPercentage"`
	StagsDiedPct  float64 `json:"stagsDiedPercentage"`
	HindsDiedPct  float64 `json:"hindsDiedPercentage"`
}

func diedPct(before, after int) float64 {
	if before <= 0 {
		return 0
	}
	return float64(before-after) / float64(before) * 100
}

// Take records the outcome of one transition.
func Take(sample int, t deer.Transition, c Classes) Record {
	pop := t.Harvested

	r := Record{
		Sample:      sample,
		Year:        t.Year,
		Individuals: len(pop),
		Stags:       pop.Count(c.stags()),
		Hinds:       pop.Count(c.hinds()),
		Calves:      pop.Count(c.calves()),
		Births:      t.Births(),
		Deaths:      t.NaturalDeaths(),
		Harvested:   t.Culls.Total(),
		AgeDist:     pop.Ages(),
		MeanAge:     pop.MeanAge(),
	}

	before, after := t.Reproduced, t.Survived
	r.CalvesDiedPct = diedPct(before.Count(c.calves()), after.Count(c.calves()))
	r.StagsDiedPct = diedPct(before.Count(c.stags()), after.Count(c.stags()))
	r.HindsDiedPct = diedPct(before.Count(c.hinds()), after.Count(c.hinds()))
	return r
}

// AgeHistogram counts the individuals at each age up to maxAge; older
// animals are folded into the last bucket.
func AgeHistogram(ages []int, maxAge int) []int {
	counts := make([]int, maxAge+1)
	for _, a := range ages {
		if a > maxAge {
			a = maxAge
		}
		counts[a]++
	}
	return counts
}
