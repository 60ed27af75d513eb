package page

import "errors"

var (
	// ErrBadSize indicates a zero page size was passed; the provider
	// never substitutes a default.
	ErrBadSize = errors.New("page: page size must be nonzero")

	// ErrBadCount indicates a zero page count was passed; an empty run
	// is not representable.
	ErrBadCount = errors.New("page: page count must be nonzero")

	// ErrOverflow indicates pageSize*count does not fit in a uintptr.
	// The request is refused before any system call.
	ErrOverflow = errors.New("page: byte length overflows")

	// ErrPlacement indicates an exact-address request could not be
	// honored at that address.
	ErrPlacement = errors.New("page: exact placement unavailable")

	// ErrReleased indicates the chunk describes no memory: it was never
	// requested, it failed, or it was already released.
	ErrReleased = errors.New("page: chunk already released")
)
