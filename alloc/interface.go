package alloc

import "unsafe"

// Allocator is the contract every allocator presents to its callers.
//
// Implementations are free in how they obtain and organize memory; the
// contract only pins down request shapes and failure signaling. See
// Bind for assembling an Allocator from standalone functions.
type Allocator interface {
	// Alloc requests a block of exactly size*count bytes whose start
	// address is a multiple of align. Returns nil and a non-nil error
	// if the request cannot be honored, including when size*count
	// overflows; detecting that overflow is the implementation's
	// responsibility. A non-nil pointer is always aligned as requested.
	Alloc(size, align, count uintptr) (unsafe.Pointer, error)

	// Resize changes the extent of the block at addr to size*count
	// bytes without relocating it. addr must be the start of a live
	// block obtained from Alloc on this allocator, and align must be
	// the alignment the block was allocated with. On success the block
	// spans the new extent at the same address. On failure the block
	// is untouched and remains usable at its previous extent.
	Resize(addr unsafe.Pointer, size, align, count uintptr) bool

	// Free returns the block starting at addr to the allocator. addr
	// must be the start of a live block obtained from Alloc on this
	// allocator; whether nil is tolerated is implementation-defined.
	Free(addr unsafe.Pointer)
}
