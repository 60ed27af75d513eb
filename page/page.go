package page

import (
	"unsafe"

	"github.com/joshuapare/allockit/internal/arith"
)

// Size returns the platform page size in bytes, queried from the
// operating system on every call; nothing is cached here. A return of
// zero means the query itself failed.
func Size() uintptr {
	return osPageSize()
}

// Request maps count pages of pageSize bytes each and returns the run
// as a Chunk. The memory is zeroed, readable and writable, and private
// to the process.
//
// A nil at lets the OS choose the placement. A non-nil at demands
// exactly that address: if the OS cannot map there, nothing stays
// mapped and the request fails with ErrPlacement. The address is a
// demand, never a hint. A demanded address must sit on a page
// boundary; an address off the page grid is itself a placement
// failure.
//
// pageSize must be the value Size reported; passing anything else is
// undefined at the OS boundary. Zero pageSize or count and byte lengths
// that overflow are refused before any system call, so a failed Request
// never leaves a partial mapping behind.
func Request(pageSize uintptr, at unsafe.Pointer, count uintptr) (Chunk, error) {
	if pageSize == 0 {
		return Chunk{}, ErrBadSize
	}
	if count == 0 {
		return Chunk{}, ErrBadCount
	}
	length, ok := arith.Mul(pageSize, count)
	if !ok {
		return Chunk{}, ErrOverflow
	}
	start, err := osReserve(at, length)
	if err != nil {
		return Chunk{}, err
	}
	return Chunk{start: start, count: count}, nil
}

// Release returns the run described by c to the operating system.
// pageSize must be the page size the run was requested with, and the
// whole run is released at once; partial returns do not exist.
//
// On success *c becomes the zero Chunk. On failure *c is untouched, so
// the caller still holds a valid description of the mapping. Releasing
// a zero Chunk fails with ErrReleased without a system call.
func Release(pageSize uintptr, c *Chunk) error {
	if c == nil || c.start == nil {
		return ErrReleased
	}
	if pageSize == 0 {
		return ErrBadSize
	}
	length, ok := arith.Mul(pageSize, c.count)
	if !ok {
		return ErrOverflow
	}
	if err := osRelease(c.start, length); err != nil {
		return err
	}
	*c = Chunk{}
	return nil
}
