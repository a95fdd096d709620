// deer project individual.go
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

import "fmt"

type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Male {
		return "M"
	}
	return "F"
}

// Individual is one deer. Age is in whole years, 0 in the year of birth.
type Individual struct {
	Age int
	Sex Sex
}

func (d Individual) String() string {
	return fmt.Sprintf("%s%d", d.Sex, d.Age)
}

// Population is one year's snapshot of the herd. Its order is the order
// every stage enumerates individuals in, for random draws as well as for
// positional culling.
type Population []Individual

// clone returns a snapshot that shares no storage with p
func (p Population) clone() Population {
	out := make(Population, len(p))
	copy(out, p)
	return out
}

// Ages lists the age of every individual in enumeration order.
func (p Population) Ages() []int {
	ages := make([]int, len(p))
	for i, d := range p {
		ages[i] = d.Age
	}
	return ages
}

// MeanAge is 0 for an empty population.
func (p Population) MeanAge() float64 {
	if len(p) == 0 {
		return 0
	}
	var sum int
	for _, d := range p {
		sum += d.Age
	}
	return float64(sum) / float64(len(p))
}

// NewCohort makes n individuals of the same age and sex.
func NewCohort(n, age int, sex Sex) Population {
	out := make(Population, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Individual{Age: age, Sex: sex})
	}
	return out
}
