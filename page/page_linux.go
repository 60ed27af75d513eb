//go:build linux

package page

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func osPageSize() uintptr {
	size := unix.Getpagesize()
	if size <= 0 {
		return 0
	}
	return uintptr(size)
}

// osReserve maps length bytes of zeroed, private anonymous memory. A
// non-nil at demands exactly that address: MAP_FIXED_NOREPLACE makes
// the kernel refuse to clobber an existing mapping, and because kernels
// before 4.17 silently ignore the flag and relocate instead, the result
// address is verified and a misplaced mapping is torn down.
func osReserve(at unsafe.Pointer, length uintptr) (unsafe.Pointer, error) {
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	if at != nil {
		flags |= unix.MAP_FIXED_NOREPLACE
	}
	p, err := unix.MmapPtr(-1, 0, at, length, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		// EEXIST is an occupied range; EINVAL under a demanded address
		// is an address off the page grid. Both mean the placement is
		// unavailable.
		if at != nil && (errors.Is(err, unix.EEXIST) || errors.Is(err, unix.EINVAL)) {
			return nil, fmt.Errorf("%w: %w", ErrPlacement, err)
		}
		return nil, fmt.Errorf("page: map: %w", err)
	}
	if at != nil && p != at {
		if unmapErr := unix.MunmapPtr(p, length); unmapErr != nil {
			return nil, fmt.Errorf("page: unmap misplaced run: %w", unmapErr)
		}
		return nil, fmt.Errorf("%w: kernel placed run at %p", ErrPlacement, p)
	}
	return p, nil
}

func osRelease(start unsafe.Pointer, length uintptr) error {
	if err := unix.MunmapPtr(start, length); err != nil {
		return fmt.Errorf("page: unmap: %w", err)
	}
	return nil
}
