// simulateYears
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

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/exp/rand"

	"github.com/jakemikulin/red-deer-model/census"
	"github.com/jakemikulin/red-deer-model/deer"
	"github.com/jakemikulin/red-deer-model/logger"
)

const histogramAges = 20 // oldest age shown on its own in the verbose age structure

type sampleResult struct {
	sample  int
	records []census.Record
}

// sampleSeeds draws one seed per sample up front so the trajectories do not
// depend on the order the samples happen to run in.
func sampleSeeds(seed int64, n int) []uint64 {
	r := rand.New(rand.NewSource(uint64(seed)))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = r.Uint64()
	}
	return seeds
}

// simulateYears runs one sample from its own foundation herd to the end of
// the horizon.
func (s *simulation) simulateYears(sample int, seed uint64) []census.Record {
	src := deer.NewSource(seed)
	pop := s.foundation.Build(src)

	records := make([]census.Record, 0, s.endYear-s.startYear+1)
	for year := s.startYear; year <= s.endYear; year++ {
		t := deer.Advance(pop, s.params, s.policy, year, src)
		records = append(records, census.Take(sample, t, s.classes))
		if sample == 0 && logger.Verbose() {
			fmt.Printf("Sample 0, year %d: %s deer (%s born, %s died, %s culled)\n", year,
				humanize.Comma(int64(len(t.Harvested))), humanize.Comma(int64(t.Births())),
				humanize.Comma(int64(t.NaturalDeaths())), humanize.Comma(int64(t.Culls.Total())))
		}
		pop = t.Harvested
	}
	if sample == 0 && logger.Verbose() && len(records) > 0 {
		last := records[len(records)-1]
		fmt.Printf("Sample 0 age structure in %d (ages 0-%d+): %v\n", last.Year, histogramAges,
			census.AgeHistogram(last.AgeDist, histogramAges))
	}
	return records
}

// multistart is the go routine for one sample
func multistart(swg *sizedwaitgroup.SizedWaitGroup, s *simulation, sample int, seed uint64, c chan<- sampleResult) {
	defer swg.Done()
	c <- sampleResult{sample: sample, records: s.simulateYears(sample, seed)}
}

// launchSimulations runs every sample, at most nWorkers at a time, and
// returns the records ordered by sample then year.
func (s *simulation) launchSimulations(seeds []uint64, nWorkers int) []census.Record {
	if nWorkers < 1 {
		nWorkers = 1
	}
	swg := sizedwaitgroup.New(nWorkers)
	ch := make(chan sampleResult, len(seeds)) // Buffered channel for results

	for i := range seeds {
		swg.Add()
		go multistart(&swg, s, i, seeds[i], ch)
	}
	swg.Wait()
	close(ch)

	bySample := make([][]census.Record, len(seeds))
	for r := range ch {
		bySample[r.sample] = r.records
	}

	var records []census.Record
	for _, r := range bySample {
		records = append(records, r...)
	}
	return records
}
