package allocator

import (
	"fmt"

	"github.com/firefly-engineering/nextfit/internal/errors"
)

// DefaultLayout is the partition table used when no layout is configured.
var DefaultLayout = []int{300, 200, 100, 250, 150, 50}

// Reason explains why an allocation did not succeed
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoFit
	ReasonInvalidSize
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoFit:
		return "no fit"
	case ReasonInvalidSize:
		return "invalid size"
	}
	return "unknown"
}

// AllocationResult is the outcome of one Allocate call.
// Ordinal is 1-based and zero when OK is false.
type AllocationResult struct {
	OK      bool
	Ordinal int
	Process string
	Size    int
	Reason  Reason
}

// Err converts a failed result into a typed error; nil on success.
func (r AllocationResult) Err() error {
	switch r.Reason {
	case ReasonNoFit:
		return errors.NoFitFound(r.Process, r.Size)
	case ReasonInvalidSize:
		return errors.InvalidInput(fmt.Sprintf("size must be a positive integer (got %d)", r.Size))
	}
	return nil
}

// BlockSummary is a read-only snapshot of one block
type BlockSummary struct {
	Ordinal   int
	Capacity  int
	Status    Status
	Remaining int
	Occupants []string
}

// Allocator performs next-fit allocation over a fixed list of blocks
type Allocator struct {
	layout []int
	blocks []*Block
	cursor int
}

// New creates an allocator with one block per size. The layout must be
// non-empty and every size positive.
func New(sizes ...int) (*Allocator, error) {
	if err := ValidateLayout(sizes); err != nil {
		return nil, err
	}

	layout := make([]int, len(sizes))
	copy(layout, sizes)

	a := &Allocator{layout: layout}
	a.Reset()
	return a, nil
}

// NewDefault creates an allocator over DefaultLayout
func NewDefault() *Allocator {
	a, err := New(DefaultLayout...)
	if err != nil {
		panic(err)
	}
	return a
}

// ValidateLayout checks that a block layout can back an allocator
func ValidateLayout(sizes []int) error {
	if len(sizes) == 0 {
		return errors.ConfigError("block layout must contain at least one block", nil)
	}
	for i, size := range sizes {
		if size <= 0 {
			return errors.ConfigError(fmt.Sprintf("block %d: size must be positive (got %d)", i+1, size), nil)
		}
	}
	return nil
}

// Reset recreates every block at full capacity and rewinds the cursor
func (a *Allocator) Reset() {
	a.blocks = make([]*Block, len(a.layout))
	for i, size := range a.layout {
		a.blocks[i] = newBlock(size)
	}
	a.cursor = 0
}

// Allocate places size KB for process in the next block that fits,
// scanning circularly from the cursor.
func (a *Allocator) Allocate(process string, size int) AllocationResult {
	res := AllocationResult{Process: process, Size: size}
	if size <= 0 {
		res.Reason = ReasonInvalidSize
		return res
	}

	idx, ok := a.scan(size)
	if !ok {
		res.Reason = ReasonNoFit
		return res
	}

	a.blocks[idx].take(process, size)
	a.cursor = (idx + 1) % len(a.blocks)

	res.OK = true
	res.Ordinal = idx + 1
	return res
}

// scan returns the index of the first block from the cursor that fits size.
// It visits each block at most once and does not touch the cursor.
func (a *Allocator) scan(size int) (int, bool) {
	n := len(a.blocks)
	for step := 0; step < n; step++ {
		idx := (a.cursor + step) % n
		if a.blocks[idx].fits(size) {
			return idx, true
		}
	}
	return 0, false
}

// Inspect returns a summary of every block in index order
func (a *Allocator) Inspect() []BlockSummary {
	out := make([]BlockSummary, len(a.blocks))
	for i, b := range a.blocks {
		out[i] = BlockSummary{
			Ordinal:   i + 1,
			Capacity:  b.capacity,
			Status:    b.Status(),
			Remaining: b.remaining,
			Occupants: b.names(),
		}
	}
	return out
}

// Occupants returns the full occupant list of the block at ordinal (1-based)
func (a *Allocator) Occupants(ordinal int) ([]string, error) {
	b, err := a.Block(ordinal)
	if err != nil {
		return nil, err
	}
	return b.names(), nil
}

// Block returns the block at ordinal (1-based)
func (a *Allocator) Block(ordinal int) (*Block, error) {
	if ordinal < 1 || ordinal > len(a.blocks) {
		return nil, errors.BlockNotFound(ordinal, len(a.blocks))
	}
	return a.blocks[ordinal-1], nil
}

// Cursor returns the index the next scan starts from
func (a *Allocator) Cursor() int {
	return a.cursor
}

// Len returns the number of blocks
func (a *Allocator) Len() int {
	return len(a.blocks)
}

// Layout returns a copy of the configured block sizes
func (a *Allocator) Layout() []int {
	out := make([]int, len(a.layout))
	copy(out, a.layout)
	return out
}
