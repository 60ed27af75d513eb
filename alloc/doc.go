// Package alloc defines the capability contract shared by memory allocators.
//
// # Overview
//
// This package carries no allocation algorithm. It fixes the shape every
// allocator presents to its callers so that data structures can be written
// against one contract and composed with any conforming allocator: a pool,
// an arena, a bump allocator, or a thin wrapper over foreign memory.
//
// # The Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Alloc(size, align, count): Obtain size*count bytes aligned to align
//   - Resize(addr, size, align, count): Change a block's extent in place
//   - Free(addr): Return a block to the allocator
//
// All magnitudes are uintptr. Failure is reported through return values,
// never through panics: Alloc yields a nil pointer and an error, Resize
// yields false and leaves the block untouched.
//
// # Assembling an Allocator
//
// Implementations either satisfy the interface directly or collect their
// capabilities in a Funcs record and pass it to Bind:
//
//	a, err := alloc.Bind(alloc.Funcs{
//	    AllocFunc:  arena.grab,
//	    ResizeFunc: alloc.NopResize,
//	    FreeFunc:   alloc.NopFree,
//	})
//	if err != nil {
//	    return err
//	}
//
// Bind rejects records with a nil capability, so a partially wired
// allocator is never observable. NopResize and NopFree are legal
// stand-ins for allocators that cannot resize in place or that reclaim
// memory in bulk.
//
// # Typed Helpers
//
// The generic helpers derive size and alignment from a Go type, removing
// hand-written layout arithmetic from call sites:
//
//	items, err := alloc.Alloc[int64](a, 128)
//	if err != nil {
//	    return err
//	}
//	view := alloc.Slice(items, 128)
//	...
//	if !alloc.Resize(a, items, 256) {
//	    // still 128 items, relocate by hand
//	}
//	alloc.Free(a, items)
//
// Memory handed out by an Allocator is outside the Go heap and is not
// scanned by the garbage collector. Storing Go pointers in it does not
// keep their referents alive; keep element types pointer-free.
//
// # Thread Safety
//
// The contract itself promises nothing about concurrent use. Each
// implementation documents its own policy; callers synchronize
// externally when the implementation requires it.
//
// # Related Packages
//
//   - github.com/joshuapare/allockit/page: OS-backed page provider that
//     allocator implementations draw their backing memory from
package alloc
