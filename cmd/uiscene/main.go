// Command uiscene loads, lays out and renders anchorui scene files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/anchorui/cmd/uiscene/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
