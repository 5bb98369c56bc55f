// Command replay loads one or more JSON scenario fixtures (internal/replay)
// and drives each through the conversion orchestrator, printing a per-step
// pass/fail table. It replaces the teacher's DB-extraction mode: this
// domain's usage-stats store holds counters and timings, not a decision
// log, so there is nothing here to play back from a database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nmuraoka/convergo/internal/replay"
)

// #region main

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: replay fixture.json [fixture.json ...]")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range paths {
		if !runFixture(path) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// #endregion main

// #region output

func runFixture(path string) bool {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture %s: %v\n", path, err)
		return false
	}

	results, summary := replay.Run(f)

	fmt.Printf("== %s ==\n", path)
	if f.Description != "" {
		fmt.Println(f.Description)
	}
	fmt.Printf("%-36s| %-6s| %-6s| %s\n", "Op", "Return", "Want", "Result")
	fmt.Printf("%-36s+%-6s+%-6s+%s\n", "------------------------------------", "------", "------", "------")

	for _, r := range results {
		status := "OK"
		if !r.Passed {
			status = "FAIL: " + r.Mismatch
		}
		fmt.Printf("%-36s| %-6v| %-6v| %s\n", r.Op, r.Returned, r.ExpectReturn, status)
	}

	fmt.Printf("\nSummary: %d total, %d passed, %d failed\n\n", summary.TotalSteps, summary.Passed, summary.Failed)
	return summary.Failed == 0
}

// #endregion output
