// cohort
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

type SexFilter int

const (
	EitherSex SexFilter = iota
	MaleOnly
	FemaleOnly
)

func (f SexFilter) admits(s Sex) bool {
	switch f {
	case MaleOnly:
		return s == Male
	case FemaleOnly:
		return s == Female
	}
	return true
}

// Cohort selects individuals by an inclusive age range and a sex filter.
// A negative MaxAge leaves the range open above.
type Cohort struct {
	MinAge int
	MaxAge int
	Sex    SexFilter
}

func ExactAge(age int, sex SexFilter) Cohort {
	return Cohort{MinAge: age, MaxAge: age, Sex: sex}
}

func AgeRange(min, max int, sex SexFilter) Cohort {
	return Cohort{MinAge: min, MaxAge: max, Sex: sex}
}

func AtLeast(age int, sex SexFilter) Cohort {
	return Cohort{MinAge: age, MaxAge: -1, Sex: sex}
}

// OlderThan is the strict form used for the mature classes: OlderThan(1)
// starts at age 2.
func OlderThan(age int, sex SexFilter) Cohort {
	return AtLeast(age+1, sex)
}

func (c Cohort) Contains(d Individual) bool {
	if d.Age < c.MinAge {
		return false
	}
	if c.MaxAge >= 0 && d.Age > c.MaxAge {
		return false
	}
	return c.Sex.admits(d.Sex)
}

// Select returns the members of c in enumeration order.
func (p Population) Select(c Cohort) Population {
	var out Population
	for _, d := range p {
		if c.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

func (p Population) Count(c Cohort) int {
	n := 0
	for _, d := range p {
		if c.Contains(d) {
			n++
		}
	}
	return n
}

// Any reports whether at least one individual falls in c.
func (p Population) Any(c Cohort) bool {
	for _, d := range p {
		if c.Contains(d) {
			return true
		}
	}
	return false
}
