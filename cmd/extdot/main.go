// The extdot command writes the state machines compiled from a pattern in
// GraphViz format.
//
// Example:
//
//	$ extdot '*.+(js|ts)' | dot -Tsvg > machine.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/extglob"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}

	p := extglob.Parse(os.Args[1])
	if err := p.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
