package allocator

// Status is the derived state of a block
type Status int

const (
	StatusFree Status = iota
	StatusAllocated
)

func (s Status) String() string {
	switch s {
	case StatusFree:
		return "free"
	case StatusAllocated:
		return "allocated"
	}
	return "unknown"
}

// Occupant is one allocation recorded in a block
type Occupant struct {
	Name string
	Size int
}

// Block is a fixed-capacity memory partition. It exclusively owns its
// occupant list, which is append-only.
type Block struct {
	capacity  int
	remaining int
	occupants []Occupant
}

func newBlock(capacity int) *Block {
	return &Block{
		capacity:  capacity,
		remaining: capacity,
	}
}

// Capacity returns the total size of the block in KB
func (b *Block) Capacity() int {
	return b.capacity
}

// Remaining returns the unallocated KB left in the block
func (b *Block) Remaining() int {
	return b.remaining
}

// Status reports free until the first occupant lands in the block
func (b *Block) Status() Status {
	if len(b.occupants) == 0 {
		return StatusFree
	}
	return StatusAllocated
}

// Occupants returns a copy of the block's allocations in chronological order
func (b *Block) Occupants() []Occupant {
	out := make([]Occupant, len(b.occupants))
	copy(out, b.occupants)
	return out
}

// Used returns the KB handed out to occupants
func (b *Block) Used() int {
	used := 0
	for _, o := range b.occupants {
		used += o.Size
	}
	return used
}

func (b *Block) fits(size int) bool {
	return b.remaining >= size
}

func (b *Block) take(name string, size int) {
	b.remaining -= size
	b.occupants = append(b.occupants, Occupant{Name: name, Size: size})
}

func (b *Block) names() []string {
	names := make([]string, len(b.occupants))
	for i, o := range b.occupants {
		names[i] = o.Name
	}
	return names
}
