// Command dstar drives the incremental grid replanner from the terminal.
//
// Usage:
//
//	dstar run     <map.txt|scenario.yaml> [--render] [--compact] [--metrics]
//	dstar step    <map.txt|scenario.yaml>
//	dstar costs   <map.txt|scenario.yaml>
//	dstar optimal <map.txt|scenario.yaml>
//
// Maps use the text format: one row per line, O traversable, B blocked,
// U unknown, S start, G goal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
