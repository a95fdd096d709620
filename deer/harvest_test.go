// harvest_test.go
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
	"testing"
)

func TestThresholdCullingLeavesSmallCohortsAlone(t *testing.T) {
	policy := ThresholdCulling{
		Limit: 5,
		Quota: ThresholdQuota{Calves: 3, YoungHinds: 3, YoungStags: 3, MatureHinds: 3, MatureStags: 3},
	}
	pop := NewCohort(5, 0, Female)                // at the limit
	pop = append(pop, NewCohort(6, 4, Male)...)   // over the limit
	pop = append(pop, NewCohort(2, 1, Female)...) // under

	got, tally := policy.HarvestWithTally(pop, 2005, NewSource(1))
	if n := got.Count(ExactAge(0, EitherSex)); n != 5 {
		t.Fatalf("calves at the limit were culled: %d left", n)
	}
	if n := got.Count(OlderThan(1, MaleOnly)); n != 3 {
		t.Fatalf("mature stags left %d, want 3", n)
	}
	if n := got.Count(ExactAge(1, FemaleOnly)); n != 2 {
		t.Fatalf("young hinds left %d, want 2", n)
	}
	if tally.Total() != 3 {
		t.Fatalf("tally total %d, want 3", tally.Total())
	}
}

func TestThresholdCullingNeverGoesNegative(t *testing.T) {
	policy := ThresholdCulling{Limit: 0, Quota: ThresholdQuota{MatureHinds: 100}}
	pop := NewCohort(4, 6, Female)
	got := Harvest(policy, pop, 0, NewSource(1))
	if len(got) != 0 {
		t.Fatalf("expected every hind taken, %d left", len(got))
	}
}

func TestScheduledCullingClampsToCohort(t *testing.T) {
	policy := ScheduledCulling{
		Schedule: map[int]CullQuota{2006: {Calves: 50, Hinds: 1, Stags: 0}},
	}
	pop := NewCohort(7, 0, Male)
	pop = append(pop, NewCohort(3, 5, Female)...)
	pop = append(pop, NewCohort(2, 5, Male)...)

	got, tally := policy.HarvestWithTally(pop, 2006, NewSource(1))
	if n := got.Count(ExactAge(0, EitherSex)); n != 0 {
		t.Fatalf("%d calves left, want 0", n)
	}
	if n := got.Count(OlderThan(0, FemaleOnly)); n != 2 {
		t.Fatalf("%d hinds left, want 2", n)
	}
	if n := got.Count(OlderThan(0, MaleOnly)); n != 2 {
		t.Fatalf("%d stags left, want 2", n)
	}
	if tally[0].Culled != 7 || tally[0].Available != 7 {
		t.Fatalf("calf tally %+v", tally[0])
	}
}

func TestScheduledCullingMissingYearIsNoCull(t *testing.T) {
	policy := ScheduledCulling{Schedule: map[int]CullQuota{2005: {Calves: 1, Hinds: 1, Stags: 1}}}
	pop := testHerd()
	got := Harvest(policy, pop, 2010, NewSource(1))
	if len(got) != len(pop) {
		t.Fatalf("unscheduled year removed %d", len(pop)-len(got))
	}
}

func TestScheduledCullingCalfRange(t *testing.T) {
	policy := ScheduledCulling{
		CalfMaxAge: 2,
		Schedule:   map[int]CullQuota{1: {Calves: 100}},
	}
	got := Harvest(policy, testHerd(), 1, NewSource(1))
	if n := got.Count(AgeRange(0, 2, EitherSex)); n != 0 {
		t.Fatalf("%d calves aged 0-2 left", n)
	}
	if len(got) != 3 {
		t.Fatalf("expected the three adults to remain, got %v", got)
	}
}

func TestLeadingSelectionTakesFirstMembers(t *testing.T) {
	group := Population{{Age: 3, Sex: Female}, {Age: 4, Sex: Female}, {Age: 5, Sex: Female}}
	got := cull(group, 2, SelectLeading, nil)
	if len(got) != 1 || got[0].Age != 5 {
		t.Fatalf("unexpected survivors %v", got)
	}
}

func TestUniformSelectionIsSeededAndOrdered(t *testing.T) {
	var group Population
	for age := 1; age <= 30; age++ {
		group = append(group, Individual{Age: age, Sex: Male})
	}
	a := cull(group, 12, SelectUniform, NewSource(8))
	b := cull(group, 12, SelectUniform, NewSource(8))
	if len(a) != 18 || len(b) != 18 {
		t.Fatalf("kept %d and %d, want 18", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed kept different animals at %d", i)
		}
		if i > 0 && a[i].Age <= a[i-1].Age {
			t.Fatalf("survivors lost their relative order: %v", a)
		}
	}
}

func TestPolicyValidation(t *testing.T) {
	bad := []HarvestPolicy{
		ThresholdCulling{Limit: -1},
		ThresholdCulling{Quota: ThresholdQuota{YoungStags: -2}},
		ScheduledCulling{Schedule: map[int]CullQuota{2005: {Hinds: -1}}},
		ScheduledCulling{CalfMaxAge: -1},
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPolicy) {
			t.Fatalf("%s policy %+v: got %v", p.Name(), p, err)
		}
	}
	if err := (NoHarvest{}).Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestHarvestOnEmptyPopulation(t *testing.T) {
	policies := []HarvestPolicy{
		NoHarvest{},
		ThresholdCulling{Quota: ThresholdQuota{Calves: 2}},
		ScheduledCulling{Schedule: map[int]CullQuota{1: {Calves: 2, Hinds: 2, Stags: 2}}},
	}
	for _, p := range policies {
		if got := Harvest(p, nil, 1, NewSource(1)); len(got) != 0 {
			t.Fatalf("%s produced %v from nothing", p.Name(), got)
		}
	}
}
