// Package allocator simulates next-fit contiguous memory allocation over a
// fixed partition table.
//
// # Blocks
//
// An Allocator owns an ordered list of fixed-capacity blocks created from a
// layout of sizes in KB. DefaultLayout is:
//
//	[300, 200, 100, 250, 150, 50]
//
// Blocks are never split, merged or freed. A block with at least one
// occupant reports StatusAllocated even when it still has remaining
// capacity, so several processes may share one block.
//
// # Next-fit
//
// Allocate scans from the cursor in circular order and takes the first block
// whose remaining capacity fits the request. On success the cursor moves to
// the block after the one used; on failure nothing changes. Each scan visits
// every block at most once.
//
//	a := allocator.NewDefault()
//	res := a.Allocate("P1", 250) // Block 1
//	res = a.Allocate("P2", 180)  // Block 2, scan resumed at index 1
//
// # Concurrency
//
// An Allocator is not safe for concurrent use. Callers sharing one between
// goroutines go through session.Session, which serializes mutations.
package allocator
