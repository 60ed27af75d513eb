package alloc

import (
	"fmt"
	"unsafe"
)

// Funcs collects the three capability functions an allocator is built
// from. Each field typically closes over the allocator's state. A Funcs
// value is not itself an Allocator; pass it to Bind.
type Funcs struct {
	// AllocFunc carries the Alloc capability. Required.
	AllocFunc func(size, align, count uintptr) (unsafe.Pointer, error)

	// ResizeFunc carries the Resize capability. Required; use NopResize
	// for allocators that never change a block's extent in place.
	ResizeFunc func(addr unsafe.Pointer, size, align, count uintptr) bool

	// FreeFunc carries the Free capability. Required; use NopFree for
	// allocators that reclaim memory in bulk.
	FreeFunc func(addr unsafe.Pointer)
}

// Bind validates f and returns it as an Allocator. Every field must be
// set: a nil capability yields ErrMissingCapability naming the field,
// so an allocator with a missing capability can never be dispatched.
func Bind(f Funcs) (Allocator, error) {
	switch {
	case f.AllocFunc == nil:
		return nil, fmt.Errorf("%w: AllocFunc", ErrMissingCapability)
	case f.ResizeFunc == nil:
		return nil, fmt.Errorf("%w: ResizeFunc", ErrMissingCapability)
	case f.FreeFunc == nil:
		return nil, fmt.Errorf("%w: FreeFunc", ErrMissingCapability)
	}
	return bound{f}, nil
}

type bound struct{ f Funcs }

var _ Allocator = bound{}

func (b bound) Alloc(size, align, count uintptr) (unsafe.Pointer, error) {
	return b.f.AllocFunc(size, align, count)
}

func (b bound) Resize(addr unsafe.Pointer, size, align, count uintptr) bool {
	return b.f.ResizeFunc(addr, size, align, count)
}

func (b bound) Free(addr unsafe.Pointer) {
	b.f.FreeFunc(addr)
}

// NopResize declines every resize. It is a legal ResizeFunc for
// allocators that cannot change a block's extent in place; callers fall
// back to allocate, copy and free.
func NopResize(addr unsafe.Pointer, size, align, count uintptr) bool {
	return false
}

// NopFree ignores the address. It is a legal FreeFunc for arena-style
// allocators whose memory is reclaimed all at once.
func NopFree(addr unsafe.Pointer) {}
