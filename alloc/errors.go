package alloc

import "errors"

var (
	// ErrMissingCapability indicates a Funcs record with a nil field was
	// passed to Bind.
	ErrMissingCapability = errors.New("alloc: missing capability")

	// ErrExhausted indicates the allocator cannot satisfy the requested
	// extent.
	ErrExhausted = errors.New("alloc: out of space")

	// ErrBadAlign indicates the requested alignment is not one the
	// allocator supports.
	ErrBadAlign = errors.New("alloc: unsupported alignment")

	// ErrOverflow indicates size*count does not fit in a uintptr.
	ErrOverflow = errors.New("alloc: byte length overflows")
)
