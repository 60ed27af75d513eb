// Package page hands out page-granular memory directly from the
// operating system.
//
// # Overview
//
// This package is the supply side for allocator implementations: it
// requests runs of whole pages from the OS and returns them, nothing
// more. No allocation strategy, no caching, no accounting. Memory
// arrives zeroed, readable and writable, private to the process, and
// independent of the Go heap.
//
// # Operations
//
//   - Size(): The platform page size, queried from the OS on every call
//   - Request(pageSize, at, count): Map count pages, optionally at an
//     exact address
//   - Release(pageSize, &chunk): Unmap the full run and zero the chunk
//
// A Chunk pairs the run's start address with its page count. The zero
// Chunk is the only failed or released state: Start is nil exactly when
// Count is zero, so callers can always tell a live run from a dead one.
//
// # All-or-Nothing
//
// Request either maps the complete run or maps nothing. The byte length
// pageSize*count is checked for overflow before the OS is involved; a
// request that cannot be represented fails without a system call. When
// an exact placement (non-nil at) cannot be honored, any mapping the OS
// made elsewhere is torn down and the request fails with ErrPlacement.
//
// # Platform Support
//
// Two backends exist: mmap on Linux and VirtualAlloc on Windows. Both
// expose identical behavior, so callers never branch on GOOS. Building
// for any other platform fails at compile time; there is no fallback.
//
// # Usage Example
//
//	pageSize := page.Size()
//	if pageSize == 0 {
//	    return errors.New("page size unavailable")
//	}
//
//	chunk, err := page.Request(pageSize, nil, 16)
//	if err != nil {
//	    return err
//	}
//	defer page.Release(pageSize, &chunk)
//
//	buf := chunk.Bytes(pageSize)
//	// ... carve buf up with an allocator ...
//
// # Thread Safety
//
// Size, Request and Release hold no package state and are safe for
// concurrent use. Concurrent operations on the same Chunk value are the
// caller's problem, exactly like sharing any other piece of memory.
//
// # Related Packages
//
//   - github.com/joshuapare/allockit/alloc: The allocator contract that
//     consumers of this memory implement
package page
