// census_test.go
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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/hjson/hjson-go"

	"github.com/jakemikulin/red-deer-model/deer"
)

func TestTakeCountsClasses(t *testing.T) {
	start := deer.Population{}
	start = append(start, deer.NewCohort(4, 0, deer.Male)...)
	start = append(start, deer.NewCohort(6, 3, deer.Female)...)
	start = append(start, deer.NewCohort(2, 3, deer.Male)...)

	p := deer.DefaultParameters().WithProbMale(0)
	p.ProbMatureReproduce = 1
	p.Mortality = deer.MortalityCurve{SenescenceAge: 16}
	policy := deer.ScheduledCulling{Schedule: map[int]deer.CullQuota{2005: {Stags: 1}}}

	tr := deer.Advance(start, p, policy, 2005, deer.NewSource(1))
	r := Take(3, tr, Classes{})

	if r.Sample != 3 || r.Year != 2005 {
		t.Fatalf("record keyed %d/%d", r.Sample, r.Year)
	}
	if r.Births != 6 || r.Deaths != 0 || r.Harvested != 1 {
		t.Fatalf("births %d deaths %d harvested %d", r.Births, r.Deaths, r.Harvested)
	}
	if r.Calves != 6 || r.Hinds != 6 || r.Stags != 5 {
		t.Fatalf("calves %d hinds %d stags %d", r.Calves, r.Hinds, r.Stags)
	}
	if r.Individuals != len(r.AgeDist) || r.Individuals != 17 {
		t.Fatalf("individuals %d with %d ages", r.Individuals, len(r.AgeDist))
	}
	if r.CalvesDiedPct != 0 || r.StagsDiedPct != 0 {
		t.Fatalf("death percentages %g %g without mortality", r.CalvesDiedPct, r.StagsDiedPct)
	}
}

func TestDiedPctEmptyClass(t *testing.T) {
	if got := diedPct(0, 0); got != 0 {
		t.Fatalf("empty class gave %g", got)
	}
	if got := diedPct(8, 6); got != 25 {
		t.Fatalf("got %g, want 25", got)
	}
}

func TestAgeHistogramFoldsOldAges(t *testing.T) {
	got := AgeHistogram([]int{0, 0, 1, 5, 19, 25}, 5)
	want := []int{2, 1, 0, 0, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func testRecords() []Record {
	var records []Record
	for s := 0; s < 4; s++ {
		for _, y := range []int{2005, 2006} {
			records = append(records, Record{
				Sample:      s,
				Year:        y,
				Individuals: 100 + 10*s + (y - 2005),
				Stags:       s,
				Hinds:       2 * s,
				Calves:      3,
				Harvested:   y - 2005,
			})
		}
	}
	return records
}

func TestSummarize(t *testing.T) {
	got, err := Summarize(testRecords(), 4, []int{2005, 2006})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows", len(got))
	}
	first := got[0]
	if first.Mean != 115 {
		t.Fatalf("mean %g, want 115", first.Mean)
	}
	// sizes 100,110,120,130: sample variance 166.67
	if math.Abs(first.StdDev-math.Sqrt(500.0/3)) > 1e-9 {
		t.Fatalf("stddev %g", first.StdDev)
	}
	if first.Q05 != 100 || first.Q95 != 130 {
		t.Fatalf("quantiles %g %g", first.Q05, first.Q95)
	}
	if first.MeanStags != 1.5 || first.MeanHinds != 3 || first.MeanCalves != 3 {
		t.Fatalf("class means %g %g %g", first.MeanStags, first.MeanHinds, first.MeanCalves)
	}
	if got[1].MeanHarvest != 1 || got[1].Mean != 116 {
		t.Fatalf("second year %+v", got[1])
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	got, err := Summarize([]Record{{Sample: 0, Year: 1, Individuals: 7}}, 1, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].StdDev != 0 || got[0].Mean != 7 {
		t.Fatalf("unexpected row %+v", got[0])
	}
}

func TestSummarizeMissingRecords(t *testing.T) {
	records := testRecords()[:5]
	if _, err := Summarize(records, 4, []int{2005, 2006}); err == nil {
		t.Fatal("expected an error for missing sample-years")
	}
	if _, err := Summarize(testRecords(), 2, []int{2005, 2006}); err == nil {
		t.Fatal("expected an error for a sample outside the run")
	}
}

func TestReportWriters(t *testing.T) {
	rows, err := Summarize(testRecords(), 4, []int{2005, 2006})
	if err != nil {
		t.Fatal(err)
	}

	var table bytes.Buffer
	PrintTable(&table, rows)
	if !strings.Contains(table.String(), "2006") {
		t.Fatalf("table lacks the second year:\n%s", table.String())
	}

	var dump bytes.Buffer
	if err := DumpRecords(&dump, testRecords()); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(dump.String(), "\n"); lines != 9 {
		t.Fatalf("dump has %d lines, want header plus 8", lines)
	}

	var out bytes.Buffer
	if err := WriteSummary(&out, RunSummary{RunID: "x", Seed: 1234, Samples: 4, Policy: "none", Years: rows}); err != nil {
		t.Fatal(err)
	}
	var back map[string]interface{}
	if err := hjson.Unmarshal(out.Bytes(), &back); err != nil {
		t.Fatalf("summary is not hjson: %v", err)
	}
	years, ok := back["years"].([]interface{})
	if !ok || len(years) != 2 {
		t.Fatalf("years key holds %v", back["years"])
	}
}
