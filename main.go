// deerPop project main.go
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
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/jakemikulin/red-deer-model/census"
	"github.com/jakemikulin/red-deer-model/logger"
)

var version = "beta0.1.0"

var paramFile *string   // Name of the hjson parameter file
var nSamples *int       // Overrides samples: when > 0
var nWorkers *int       // Samples simulated at once
var startYear *int      // Overrides years.start when != 0
var endYear *int        // Overrides years.end when != 0
var outputFile *string  // Optional hjson file of the yearly summary
var recordsDump *string // Optional file of every sample-year record

// Parse the arg list looking for the input hjson file
func parseArgs() {
	paramFile = flag.String("genParm", "", "The deerPop parameter file (embedded defaults when empty)")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default), 'table' or 'quiet'")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	nSamples = flag.Int("nSamples", 0, "Number of Monte-Carlo samples (default from the parameter file)")
	nWorkers = flag.Int("nWorkers", runtime.NumCPU(), "Samples simulated concurrently")
	startYear = flag.Int("startYear", 0, "First simulated year (default from the parameter file)")
	endYear = flag.Int("endYear", 0, "Last simulated year (default from the parameter file)")
	outputFile = flag.String("outputFile", "", "Optional hjson file of the yearly summary")
	recordsDump = flag.String("recordsDump", "", "Optional file with one line per sample and year")
	isVersion := flag.Bool("version", false, "prints the version number of deerPop")

	flag.Parse()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	switch *logger.OutputMode {
	case "verbose", "table", "quiet":
	default:
		logger.LogWriterFatal("outputMode must be verbose, table or quiet, not " + *logger.OutputMode)
	}
}

// Read the arguments and the parameter file and build the run
func initSimulation() *simulation {
	parseArgs()

	var data []byte
	if *paramFile != "" {
		var err error
		if data, err = os.ReadFile(*paramFile); err != nil {
			logger.LogWriterFatal("Failed to open parameter file " + *paramFile + ": " + err.Error())
		}
	}

	cfg, warnings, err := loadParam(data)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	if *nSamples > 0 {
		cfg.Samples = *nSamples
	}
	if *startYear != 0 {
		cfg.Years.Start = *startYear
	}
	if *endYear != 0 {
		cfg.Years.End = *endYear
	}

	sim, err := buildSimulation(cfg)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	sim.warnings = warnings
	for _, w := range warnings {
		logger.LogWriter(w)
		if !logger.Quiet() {
			fmt.Fprintln(os.Stderr, "WARNING:", w)
		}
	}

	if logger.Verbose() {
		if sim.comment != "" {
			fmt.Printf("Comment: %v\n\n", sim.comment)
		}
		fmt.Printf("Run %s\n", logger.RunID)
		fmt.Printf("Samples: %d  Years: %d-%d  Harvest: %s  Reproduction: %s\n",
			sim.nSamples, sim.startYear, sim.endYear, sim.policy.Name(), sim.params.Gate)
	}
	return sim
}

func writeFile(name string, write func(f *os.File) error) {
	f, err := os.Create(name)
	if err != nil {
		logger.LogWriterFatal("Cannot open " + name + ": " + err.Error())
	}
	defer f.Close()
	if err := write(f); err != nil {
		logger.LogWriterFatal(err.Error())
	}
}

func main() {
	logger.RunID = uuid.New().String()

	sim := initSimulation()
	logger.LogWriterf("starting %d samples for %d-%d with %s harvest", sim.nSamples, sim.startYear, sim.endYear, sim.policy.Name())

	start := time.Now()
	records := sim.launchSimulations(sampleSeeds(*logger.Seed, sim.nSamples), *nWorkers)
	elapsed := time.Since(start)

	summaries, err := census.Summarize(records, sim.nSamples, sim.years())
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	if logger.Verbose() {
		fmt.Printf("\nSimulated %s deer-years in %v using %d workers\n\n",
			humanize.Comma(int64(deerYears(records))), elapsed.Round(time.Millisecond), *nWorkers)
	}
	if !logger.Quiet() {
		census.PrintTable(os.Stdout, summaries)
	}

	if *recordsDump != "" {
		writeFile(*recordsDump, func(f *os.File) error { return census.DumpRecords(f, records) })
	}
	if *outputFile != "" {
		writeFile(*outputFile, func(f *os.File) error {
			return census.WriteSummary(f, census.RunSummary{
				RunID:    logger.RunID,
				Comment:  sim.comment,
				Seed:     *logger.Seed,
				Samples:  sim.nSamples,
				Policy:   sim.policy.Name(),
				Years:    summaries,
				Warnings: sim.warnings,
			})
		})
	}
	logger.LogWriterf("finished in %v", elapsed)
}

func deerYears(records []census.Record) int {
	n := 0
	for _, r := range records {
		n += r.Individuals
	}
	return n
}
