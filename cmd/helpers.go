package cmd

import (
	"fmt"
	"io"

	"github.com/firefly-engineering/nextfit/internal/app"
	"github.com/firefly-engineering/nextfit/internal/display"
)

// getApp returns the application built for this invocation.
func getApp() *app.App {
	return application
}

// printBlocks writes the current block lines.
func printBlocks(w io.Writer, a *app.App) {
	for _, line := range a.Lines() {
		fmt.Fprintln(w, line)
	}
}

// printOccupants writes the full occupant list of one block.
func printOccupants(w io.Writer, ordinal int, names []string) {
	fmt.Fprintln(w, display.OccupantTitle(ordinal))
	if len(names) == 0 {
		fmt.Fprintln(w, "(no processes)")
		return
	}
	fmt.Fprintln(w, display.OccupantList(names))
}
