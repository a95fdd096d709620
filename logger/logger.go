// logger project logger.go
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

package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

var (
	defaultMode       = "verbose"
	defaultSeed int64 = 1234
)

var OutputMode = &defaultMode // verbose, table or quiet
var Seed = &defaultSeed       // Random number generator seed of this run
var RunID string              // Stamped on every line once known
var Dir = "."                 // Where the log file is written

func Verbose() bool {
	return *OutputMode == "verbose"
}

func Quiet() bool {
	return *OutputMode == "quiet"
}

// LogFile is the name of the log for the current seed.
func LogFile() string {
	return filepath.Join(Dir, "log.deerPop."+strconv.FormatInt(*Seed, 10))
}

func write(message string) {
	f, err := os.OpenFile(LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	prefix := "deerPop "
	if RunID != "" {
		prefix += RunID + " "
	}
	logger := log.New(f, prefix, log.LstdFlags)
	logger.Println(message)
}

func LogWriter(message string) {
	write(message)
}

// LogWriterf formats like fmt.Printf.
func LogWriterf(format string, a ...interface{}) {
	write(fmt.Sprintf(format, a...))
}

func LogWriterFatal(message string) {
	write(message)

	if *OutputMode != "quiet" {
		fmt.Fprintln(os.Stderr, message)
	}
	os.Exit(1)
}
