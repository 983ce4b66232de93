// Package display renders allocator state as the text lines shown by the
// shell, the TUI and the run command.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/firefly-engineering/nextfit/internal/allocator"
)

// DefaultMaxOccupants is how many occupant names a block line lists before
// collapsing the rest into "and N more".
const DefaultMaxOccupants = 3

// Fixed user-facing messages
const (
	NoFitMessage       = "No suitable block found for allocation."
	InvalidSizeMessage = "Please enter a valid process size."
	ResetMessage       = "Memory has been reset to initial state."
)

// Renderer formats block summaries
type Renderer struct {
	MaxOccupants int
}

// New returns a renderer; a non-positive limit falls back to DefaultMaxOccupants.
func New(maxOccupants int) Renderer {
	if maxOccupants <= 0 {
		maxOccupants = DefaultMaxOccupants
	}
	return Renderer{MaxOccupants: maxOccupants}
}

// Line renders one block:
//
//	Block 1: 300 KB (Allocated to P1, P2, Remaining: 50 KB)
//	Block 2: 200 KB (Free)
func (r Renderer) Line(s allocator.BlockSummary) string {
	if s.Status == allocator.StatusFree {
		return fmt.Sprintf("Block %d: %d KB (Free)", s.Ordinal, s.Capacity)
	}
	return fmt.Sprintf("Block %d: %d KB (Allocated to %s, Remaining: %d KB)",
		s.Ordinal, s.Capacity, r.Occupants(s.Occupants), s.Remaining)
}

// Lines renders every summary in order
func (r Renderer) Lines(summaries []allocator.BlockSummary) []string {
	lines := make([]string, len(summaries))
	for i, s := range summaries {
		lines[i] = r.Line(s)
	}
	return lines
}

// Occupants joins the first MaxOccupants names and counts the rest
func (r Renderer) Occupants(names []string) string {
	limit := r.MaxOccupants
	if limit <= 0 {
		limit = DefaultMaxOccupants
	}
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s, and %d more", strings.Join(names[:limit], ", "), len(names)-limit)
}

// OccupantList renders the full occupant list, one name per line
func OccupantList(names []string) string {
	return strings.Join(names, "\n")
}

// OccupantTitle is the heading shown above a block's full occupant list
func OccupantTitle(ordinal int) string {
	return fmt.Sprintf("Processes in Block %d", ordinal)
}

// Result renders the outcome of an allocation
func Result(res allocator.AllocationResult) string {
	if !res.OK {
		if res.Reason == allocator.ReasonInvalidSize {
			return InvalidSizeMessage
		}
		return NoFitMessage
	}
	return fmt.Sprintf("Allocated %d KB to %s in Block %d", res.Size, res.Process, res.Ordinal)
}

// Table writes summaries as an aligned table
func (r Renderer) Table(w io.Writer, summaries []allocator.BlockSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BLOCK\tSIZE\tSTATUS\tREMAINING\tOCCUPANTS")
	fmt.Fprintln(tw, "-----\t----\t------\t---------\t---------")

	for _, s := range summaries {
		occupants := r.Occupants(s.Occupants)
		if occupants == "" {
			occupants = "-"
		}
		fmt.Fprintf(tw, "%d\t%d KB\t%s\t%d KB\t%s\n",
			s.Ordinal, s.Capacity, s.Status, s.Remaining, occupants)
	}

	return tw.Flush()
}
