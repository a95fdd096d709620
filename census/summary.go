// summary
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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// YearSummary aggregates one year over every sample.
type YearSummary struct {
	Year        int     `json:"year"`
	Samples     int     `json:"samples"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"stdDev"`
	StdDevMean  float64 `json:"stdDevMean"`
	Q05         float64 `json:"q05"`
	Median      float64 `json:"median"`
	Q95         float64 `json:"q95"`
	MeanStags   float64 `json:"meanStags"`
	MeanHinds   float64 `json:"meanHinds"`
	MeanCalves  float64 `json:"meanCalves"`
	MeanBirths  float64 `json:"meanBirths"`
	MeanDeaths  float64 `json:"meanNaturalDeaths"`
	MeanHarvest float64 `json:"meanHarvested"`
	MeanAge     float64 `json:"meanAge"`
}

// field picks one value out of a record
type field func(Record) float64

// grid lays one field out as a samples x years matrix
func grid(records []Record, nSamples int, years []int, f field) (*mat.Dense, error) {
	col := make(map[int]int, len(years))
	for j, y := range years {
		col[y] = j
	}
	m := mat.NewDense(nSamples, len(years), nil)
	seen := mat.NewDense(nSamples, len(years), nil)
	for _, r := range records {
		j, ok := col[r.Year]
		if !ok || r.Sample < 0 || r.Sample >= nSamples {
			return nil, fmt.Errorf("record for sample %d year %d is outside the run", r.Sample, r.Year)
		}
		m.Set(r.Sample, j, f(r))
		seen.Set(r.Sample, j, 1)
	}
	if mat.Sum(seen) != float64(nSamples*len(years)) {
		return nil, fmt.Errorf("expected %d records, some sample-years are missing", nSamples*len(years))
	}
	return m, nil
}

func columnMeans(m *mat.Dense) []float64 {
	_, c := m.Dims()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, m), nil)
	}
	return means
}

// Summarize reduces the per-sample records of a run to one row per year.
// Every sample must have a record for every year.
func Summarize(records []Record, nSamples int, years []int) ([]YearSummary, error) {
	if nSamples <= 0 || len(years) == 0 {
		return nil, nil
	}

	fields := []field{
		func(r Record) float64 { return float64(r.Individuals) },
		func(r Record) float64 { return float64(r.Stags) },
		func(r Record) float64 { return float64(r.Hinds) },
		func(r Record) float64 { return float64(r.Calves) },
		func(r Record) float64 { return float64(r.Births) },
		func(r Record) float64 { return float64(r.Deaths) },
		func(r Record) float64 { return float64(r.Harvested) },
		func(r Record) float64 { return r.MeanAge },
	}
	grids := make([]*mat.Dense, len(fields))
	for i, f := range fields {
		g, err := grid(records, nSamples, years, f)
		if err != nil {
			return nil, err
		}
		grids[i] = g
	}

	var means [][]float64
	for _, g := range grids[1:] {
		means = append(means, columnMeans(g))
	}

	out := make([]YearSummary, len(years))
	n := float64(nSamples)
	for j, y := range years {
		sizes := mat.Col(nil, j, grids[0])
		mean, variance := stat.MeanVariance(sizes, nil)
		if nSamples < 2 {
			variance = 0
		}
		sort.Float64s(sizes)

		out[j] = YearSummary{
			Year:        y,
			Samples:     nSamples,
			Mean:        mean,
			StdDev:      math.Sqrt(variance),
			StdDevMean:  math.Sqrt(variance / n),
			Q05:         stat.Quantile(0.05, stat.Empirical, sizes, nil),
			Median:      stat.Quantile(0.5, stat.Empirical, sizes, nil),
			Q95:         stat.Quantile(0.95, stat.Empirical, sizes, nil),
			MeanStags:   means[0][j],
			MeanHinds:   means[1][j],
			MeanCalves:  means[2][j],
			MeanBirths:  means[3][j],
			MeanDeaths:  means[4][j],
			MeanHarvest: means[5][j],
			MeanAge:     means[6][j],
		}
	}
	return out, nil
}
