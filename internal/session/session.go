// Package session is the boundary between presentation layers and the
// allocator. Callers send discrete commands and get plain result values
// back; no allocator state is shared across the boundary.
package session

import (
	"sync"

	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/errors"
	"github.com/firefly-engineering/nextfit/internal/logging"
)

// Command is a request sent to a Session
type Command interface {
	command()
}

// AllocateCmd requests Size KB for process Name
type AllocateCmd struct {
	Name string
	Size int
}

// ResetCmd restores every block to full capacity
type ResetCmd struct{}

// InspectCmd requests summaries of all blocks
type InspectCmd struct{}

// InspectBlockCmd requests the full occupant list of one block (1-based)
type InspectBlockCmd struct {
	Ordinal int
}

func (AllocateCmd) command()     {}
func (ResetCmd) command()        {}
func (InspectCmd) command()      {}
func (InspectBlockCmd) command() {}

// Result is the reply to a Command. Only the fields relevant to the command
// are set. A failed allocation is not an error: check Allocation.OK.
type Result struct {
	Allocation *allocator.AllocationResult
	Blocks     []allocator.BlockSummary
	Ordinal    int
	Occupants  []string
	Reset      bool
	Err        error
}

// Session serializes access to one allocator
type Session struct {
	mu    sync.RWMutex
	alloc *allocator.Allocator
}

// New wraps an allocator. The session takes ownership of it.
func New(a *allocator.Allocator) *Session {
	return &Session{alloc: a}
}

// Execute runs one command
func (s *Session) Execute(cmd Command) Result {
	switch c := cmd.(type) {
	case AllocateCmd:
		return s.allocate(c)
	case ResetCmd:
		s.Reset()
		return Result{Reset: true}
	case InspectCmd:
		return Result{Blocks: s.Inspect()}
	case InspectBlockCmd:
		names, err := s.InspectBlock(c.Ordinal)
		return Result{Ordinal: c.Ordinal, Occupants: names, Err: err}
	case nil:
		return Result{Err: errors.New(errors.ExitGeneralError, "nil command")}
	}
	return Result{Err: errors.New(errors.ExitGeneralError, "unsupported command")}
}

func (s *Session) allocate(c AllocateCmd) Result {
	if c.Size <= 0 {
		return Result{Err: errors.InvalidInput("size must be a positive integer")}
	}
	res := s.Allocate(c.Name, c.Size)
	return Result{Allocation: &res}
}

// Allocate places a process in the next block that fits
func (s *Session) Allocate(name string, size int) allocator.AllocationResult {
	s.mu.Lock()
	cursor := s.alloc.Cursor()
	res := s.alloc.Allocate(name, size)
	next := s.alloc.Cursor()
	s.mu.Unlock()

	logging.Debug("allocate",
		"process", name,
		"size", size,
		"ok", res.OK,
		"block", res.Ordinal,
		"cursor", cursor,
		"next_cursor", next,
	)
	return res
}

// Reset restores the configured layout and rewinds the cursor
func (s *Session) Reset() {
	s.mu.Lock()
	s.alloc.Reset()
	s.mu.Unlock()

	logging.Debug("reset", "blocks", s.Len())
}

// Inspect returns a snapshot of every block
func (s *Session) Inspect() []allocator.BlockSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Inspect()
}

// InspectBlock returns the full occupant list of one block
func (s *Session) InspectBlock(ordinal int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Occupants(ordinal)
}

// Cursor returns where the next scan starts
func (s *Session) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Cursor()
}

// Len returns the number of blocks
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Len()
}

// Layout returns the configured block sizes
func (s *Session) Layout() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Layout()
}
