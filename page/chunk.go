package page

import (
	"unsafe"

	"github.com/joshuapare/allockit/internal/arith"
)

// Chunk describes one contiguous run of pages handed out by Request.
// The fields are unexported so a half-valid run cannot be forged: start
// is nil exactly when count is zero, and the zero Chunk is the only
// released or failed state.
type Chunk struct {
	start unsafe.Pointer
	count uintptr
}

// Start returns the address of the first byte of the run, nil for the
// zero Chunk.
func (c Chunk) Start() unsafe.Pointer { return c.start }

// Count returns the number of pages in the run.
func (c Chunk) Count() uintptr { return c.count }

// IsZero reports whether c describes no memory.
func (c Chunk) IsZero() bool { return c.start == nil }

// Bytes returns the run's full extent as a byte slice without copying.
// pageSize must be the page size the run was requested with. Returns
// nil for the zero Chunk.
func (c Chunk) Bytes(pageSize uintptr) []byte {
	if c.start == nil {
		return nil
	}
	length, ok := arith.Mul(pageSize, c.count)
	if !ok || length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(c.start), length)
}
