// harvest
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
	"sort"

	"golang.org/x/exp/rand"
)

// Selection decides which members of a cohort are taken when only part of
// it is culled. Members are interchangeable on age and sex, so the choice
// matters only for reproducibility.
type Selection int

const (
	// SelectLeading takes the first members in enumeration order.
	SelectLeading Selection = iota
	// SelectUniform takes a uniform sample without replacement drawn from
	// the sample's stream.
	SelectUniform
)

func (s Selection) String() string {
	if s == SelectUniform {
		return "uniform"
	}
	return "leading"
}

// HarvestPolicy removes individuals from a post-mortality population.
type HarvestPolicy interface {
	Name() string
	Validate() error
	HarvestWithTally(pop Population, year int, src rand.Source) (Population, HarvestTally)
}

// CohortCull records one cohort's size before the cull and how many were
// taken.
type CohortCull struct {
	Cohort    string
	Available int
	Culled    int
}

type HarvestTally []CohortCull

func (t HarvestTally) Total() int {
	n := 0
	for _, c := range t {
		n += c.Culled
	}
	return n
}

// Harvest is HarvestWithTally without the tally.
func Harvest(policy HarvestPolicy, pop Population, year int, src rand.Source) Population {
	out, _ := policy.HarvestWithTally(pop, year, src)
	return out
}

// cull removes min(n, len(group)) members of group and returns the rest in
// their original relative order.
func cull(group Population, n int, sel Selection, src rand.Source) Population {
	if n <= 0 {
		return group
	}
	if n >= len(group) {
		return Population{}
	}
	if sel == SelectLeading {
		return group[n:].clone()
	}

	// Partial Fisher-Yates over the indices, then keep the untouched tail.
	r := rand.New(src)
	idx := make([]int, len(group))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	keep := idx[n:]
	sort.Ints(keep)

	out := make(Population, 0, len(keep))
	for _, k := range keep {
		out = append(out, group[k])
	}
	return out
}

// NoHarvest leaves the population as it is.
type NoHarvest struct{}

func (NoHarvest) Name() string    { return "none" }
func (NoHarvest) Validate() error { return nil }

func (NoHarvest) HarvestWithTally(pop Population, year int, src rand.Source) (Population, HarvestTally) {
	return pop.clone(), nil
}

// ThresholdQuota is the fixed number taken from each class once the class
// is over the hunting limit.
type ThresholdQuota struct {
	Calves      int `json:"calves"`
	YoungHinds  int `json:"youngHinds"`
	YoungStags  int `json:"youngStags"`
	MatureHinds int `json:"matureHinds"`
	MatureStags int `json:"matureStags"`
}

// ThresholdCulling culls a class only while it holds more than Limit
// animals. Calves are age 0, young deer age 1, mature deer older than 1.
type ThresholdCulling struct {
	Limit     int
	Quota     ThresholdQuota
	Selection Selection
}

func (ThresholdCulling) Name() string { return "threshold" }

func (t ThresholdCulling) Validate() error {
	if t.Limit < 0 {
		return fmt.Errorf("%w: huntingLimit must be non-negative, got %d", ErrInvalidPolicy, t.Limit)
	}
	q := t.Quota
	for _, n := range []int{q.Calves, q.YoungHinds, q.YoungStags, q.MatureHinds, q.MatureStags} {
		if n < 0 {
			return fmt.Errorf("%w: negative cull count %d", ErrInvalidPolicy, n)
		}
	}
	return nil
}

func (t ThresholdCulling) HarvestWithTally(pop Population, year int, src rand.Source) (Population, HarvestTally) {
	classes := []struct {
		name   string
		cohort Cohort
		quota  int
	}{
		{"calves", ExactAge(0, EitherSex), t.Quota.Calves},
		{"youngHinds", ExactAge(1, FemaleOnly), t.Quota.YoungHinds},
		{"youngStags", ExactAge(1, MaleOnly), t.Quota.YoungStags},
		{"matureHinds", OlderThan(1, FemaleOnly), t.Quota.MatureHinds},
		{"matureStags", OlderThan(1, MaleOnly), t.Quota.MatureStags},
	}

	out := make(Population, 0, len(pop))
	tally := make(HarvestTally, 0, len(classes))
	for _, c := range classes {
		group := pop.Select(c.cohort)
		rest := group
		if len(group) > t.Limit {
			rest = cull(group, c.quota, t.Selection, src)
		}
		tally = append(tally, CohortCull{Cohort: c.name, Available: len(group), Culled: len(group) - len(rest)})
		out = append(out, rest...)
	}
	return out, tally
}

// CullQuota is one year's row of a cull schedule.
type CullQuota struct {
	Calves int
	Hinds  int
	Stags  int
}

// ScheduledCulling takes the counts recorded for each calendar year. A
// year missing from the schedule is a year without culling.
type ScheduledCulling struct {
	CalfMaxAge int
	Schedule   map[int]CullQuota
	Selection  Selection
}

func (ScheduledCulling) Name() string { return "scheduled" }

func (s ScheduledCulling) Validate() error {
	if s.CalfMaxAge < 0 {
		return fmt.Errorf("%w: calfMaxAge must be non-negative, got %d", ErrInvalidPolicy, s.CalfMaxAge)
	}
	for year, q := range s.Schedule {
		if q.Calves < 0 || q.Hinds < 0 || q.Stags < 0 {
			return fmt.Errorf("%w: negative cull count in year %d", ErrInvalidPolicy, year)
		}
	}
	return nil
}

// Quota returns the counts for year, zero when the year is not scheduled.
func (s ScheduledCulling) Quota(year int) CullQuota {
	return s.Schedule[year]
}

func (s ScheduledCulling) HarvestWithTally(pop Population, year int, src rand.Source) (Population, HarvestTally) {
	q := s.Quota(year)
	classes := []struct {
		name   string
		cohort Cohort
		quota  int
	}{
		{"calves", AgeRange(0, s.CalfMaxAge, EitherSex), q.Calves},
		{"hinds", OlderThan(s.CalfMaxAge, FemaleOnly), q.Hinds},
		{"stags", OlderThan(s.CalfMaxAge, MaleOnly), q.Stags},
	}

	out := make(Population, 0, len(pop))
	tally := make(HarvestTally, 0, len(classes))
	for _, c := range classes {
		group := pop.Select(c.cohort)
		rest := cull(group, c.quota, s.Selection, src)
		tally = append(tally, CohortCull{Cohort: c.name, Available: len(group), Culled: len(group) - len(rest)})
		out = append(out, rest...)
	}
	return out, tally
}
