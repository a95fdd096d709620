// report
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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hjson/hjson-go"
)

// PrintTable writes the yearly summary as a fixed width table.
func PrintTable(w io.Writer, summaries []YearSummary) {
	fmt.Fprintf(w, "\t _____________________________________________________________________________________________\n")
	fmt.Fprintf(w, "\t| Year |    Mean   |  StdDev  |    5%%   |  Median  |   95%%   |  Stags  |  Hinds  |  Calves | Cull |\n")
	fmt.Fprintf(w, "\t|______|___________|__________|_________|__________|_________|_________|_________|_________|______|\n")
	for _, s := range summaries {
		fmt.Fprintf(w, "\t| %4d | %9.1f | %8.1f | %7.0f | %8.0f | %7.0f | %7.1f | %7.1f | %7.1f | %4.0f |\n",
			s.Year, s.Mean, s.StdDev, s.Q05, s.Median, s.Q95, s.MeanStags, s.MeanHinds, s.MeanCalves, s.MeanHarvest)
	}
	fmt.Fprintf(w, "\t|_____________________________________________________________________________________________|\n")
	if len(summaries) > 0 {
		fmt.Fprintf(w, "\t *Number of samples per year: %d\n", summaries[0].Samples)
	}
}

// DumpRecords writes one line per sample and year. The age distribution is
// written as a comma separated list in the last column.
func DumpRecords(w io.Writer, records []Record) error {
	if _, err := fmt.Fprintln(w, "sample year individuals stags hinds calves births deaths harvested meanAge calvesDied stagsDied hindsDied ages"); err != nil {
		return err
	}
	for _, r := range records {
		ages := make([]string, len(r.AgeDist))
		for i, a := range r.AgeDist {
			ages[i] = fmt.Sprint(a)
		}
		_, err := fmt.Fprintf(w, "%d %d %d %d %d %d %d %d %d %.3f %.2f %.2f %.2f %s\n",
			r.Sample, r.Year, r.Individuals, r.Stags, r.Hinds, r.Calves,
			r.Births, r.Deaths, r.Harvested, r.MeanAge,
			r.CalvesDiedPct, r.StagsDiedPct, r.HindsDiedPct, strings.Join(ages, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// RunSummary is what gets written to the output file of a run.
type RunSummary struct {
	RunID    string        `json:"runId"`
	Comment  string        `json:"comment,omitempty"`
	Seed     int64         `json:"seed"`
	Samples  int           `json:"samples"`
	Policy   string        `json:"policy"`
	Years    []YearSummary `json:"years"`
	Warnings []string      `json:"warnings,omitempty"`
}

// WriteSummary writes s as hjson. The struct goes through encoding/json
// first so the json tags name the keys.
func WriteSummary(w io.Writer, s RunSummary) error {
	j, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding run summary: %w", err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(j, &generic); err != nil {
		return fmt.Errorf("encoding run summary: %w", err)
	}
	b, err := hjson.Marshal(generic)
	if err != nil {
		return fmt.Errorf("encoding run summary: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}
	return nil
}
