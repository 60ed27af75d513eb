package alloc

import "unsafe"

// Alloc obtains storage for count values of T from a. Size and alignment
// are derived from T itself, so call sites carry no layout arithmetic.
// The returned memory is not zeroed unless the allocator zeroes it, and
// it is invisible to the garbage collector; see the package documentation
// before storing pointer-bearing types.
func Alloc[T any](a Allocator, count uintptr) (*T, error) {
	var zero T
	p, err := a.Alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero), count)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Resize changes the block at addr to hold count values of T without
// relocating it. addr must come from Alloc[T] on the same allocator.
// Reports success; on false the block keeps its previous extent.
func Resize[T any](a Allocator, addr *T, count uintptr) bool {
	var zero T
	return a.Resize(unsafe.Pointer(addr), unsafe.Sizeof(zero), unsafe.Alignof(zero), count)
}

// Free returns the block at addr to the allocator. addr must come from
// Alloc[T] on the same allocator.
func Free[T any](a Allocator, addr *T) {
	a.Free(unsafe.Pointer(addr))
}

// Slice wraps the count values of T starting at addr in a slice without
// copying. addr and count must describe a live block; a nil addr or zero
// count yields a nil slice.
func Slice[T any](addr *T, count uintptr) []T {
	if addr == nil || count == 0 {
		return nil
	}
	return unsafe.Slice(addr, count)
}
