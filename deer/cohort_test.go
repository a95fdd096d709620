// cohort_test.go
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

import "testing"

func testHerd() Population {
	return Population{
		{Age: 0, Sex: Male},
		{Age: 0, Sex: Female},
		{Age: 1, Sex: Female},
		{Age: 1, Sex: Male},
		{Age: 2, Sex: Female},
		{Age: 3, Sex: Male},
		{Age: 7, Sex: Female},
		{Age: 17, Sex: Male},
	}
}

func TestCohortSelect(t *testing.T) {
	pop := testHerd()
	cases := []struct {
		name   string
		cohort Cohort
		want   int
	}{
		{"calves", ExactAge(0, EitherSex), 2},
		{"young hinds", ExactAge(1, FemaleOnly), 1},
		{"young stags", ExactAge(1, MaleOnly), 1},
		{"mature hinds", OlderThan(1, FemaleOnly), 2},
		{"mature stags", OlderThan(1, MaleOnly), 2},
		{"calves 0-2", AgeRange(0, 2, EitherSex), 5},
		{"adults from 3", AtLeast(3, EitherSex), 3},
		{"nobody", ExactAge(40, EitherSex), 0},
	}
	for _, tc := range cases {
		got := pop.Select(tc.cohort)
		if len(got) != tc.want {
			t.Fatalf("%s: selected %d, want %d", tc.name, len(got), tc.want)
		}
		if n := pop.Count(tc.cohort); n != tc.want {
			t.Fatalf("%s: counted %d, want %d", tc.name, n, tc.want)
		}
		for _, d := range got {
			if !tc.cohort.Contains(d) {
				t.Fatalf("%s: selected %v outside the cohort", tc.name, d)
			}
		}
	}
}

func TestSelectKeepsEnumerationOrder(t *testing.T) {
	pop := Population{{Age: 5, Sex: Female}, {Age: 2, Sex: Male}, {Age: 3, Sex: Female}}
	got := pop.Select(AtLeast(2, FemaleOnly))
	if len(got) != 2 || got[0].Age != 5 || got[1].Age != 3 {
		t.Fatalf("unexpected selection %v", got)
	}
}

func TestYoungAndMatureClassesPartitionAdults(t *testing.T) {
	pop := testHerd()
	n := pop.Count(ExactAge(0, EitherSex)) +
		pop.Count(ExactAge(1, FemaleOnly)) + pop.Count(ExactAge(1, MaleOnly)) +
		pop.Count(OlderThan(1, FemaleOnly)) + pop.Count(OlderThan(1, MaleOnly))
	if n != len(pop) {
		t.Fatalf("classes cover %d of %d individuals", n, len(pop))
	}
}

func TestSelectOnEmptyPopulation(t *testing.T) {
	var pop Population
	if got := pop.Select(AtLeast(0, EitherSex)); len(got) != 0 {
		t.Fatalf("expected nothing, got %v", got)
	}
	if pop.Any(AtLeast(0, EitherSex)) {
		t.Fatal("empty population reported a member")
	}
}
