// Timeslice - Time Window Derivation Tool
//
// Timeslice normalizes heterogeneous textual timestamps into canonical UTC
// instants and derives bounded time windows for log investigation.
package main

import (
	"os"

	"github.com/ccollicutt/timeslice/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
