//go:build windows

package page

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemInfo = kernel32.NewProc("GetSystemInfo")
)

// systemInfo mirrors the SYSTEM_INFO layout GetSystemInfo fills in;
// x/sys/windows carries no wrapper for it.
type systemInfo struct {
	processorArchitecture     uint16
	reserved                  uint16
	pageSize                  uint32
	minimumApplicationAddress uintptr
	maximumApplicationAddress uintptr
	activeProcessorMask       uintptr
	numberOfProcessors        uint32
	processorType             uint32
	allocationGranularity     uint32
	processorLevel            uint16
	processorRevision         uint16
}

func osPageSize() uintptr {
	if err := procGetSystemInfo.Find(); err != nil {
		return 0
	}
	var si systemInfo
	procGetSystemInfo.Call(uintptr(unsafe.Pointer(&si)))
	return uintptr(si.pageSize)
}

// osReserve reserves and commits length bytes of zeroed private memory
// in one call. A non-nil at demands exactly that address: VirtualAlloc
// rounds a base address down to the 64 KiB allocation granularity, so a
// mapping that lands anywhere else is released and reported as a
// placement failure, matching the behavior of the mmap backend.
func osReserve(at unsafe.Pointer, length uintptr) (unsafe.Pointer, error) {
	base, err := windows.VirtualAlloc(uintptr(at), length,
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		if at != nil && errors.Is(err, windows.ERROR_INVALID_ADDRESS) {
			return nil, fmt.Errorf("%w: %w", ErrPlacement, err)
		}
		return nil, fmt.Errorf("page: commit: %w", err)
	}
	p := unsafe.Pointer(base)
	if at != nil && p != at {
		if freeErr := windows.VirtualFree(base, 0, windows.MEM_RELEASE); freeErr != nil {
			return nil, fmt.Errorf("page: release misplaced run: %w", freeErr)
		}
		return nil, fmt.Errorf("%w: system placed run at 0x%x", ErrPlacement, base)
	}
	return p, nil
}

// osRelease returns the whole reservation; MEM_RELEASE requires a zero
// size and frees the extent recorded at commit time, which Request
// created as a single run of exactly length bytes.
func osRelease(start unsafe.Pointer, length uintptr) error {
	if err := windows.VirtualFree(uintptr(start), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("page: release: %w", err)
	}
	return nil
}
