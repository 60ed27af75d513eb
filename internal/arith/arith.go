// Package arith provides overflow-safe arithmetic on pointer-width magnitudes.
package arith

// Mul multiplies a and b, returning ok = false when the product would
// overflow uintptr. This guards byte-length calculations (element size
// times count, page size times page count) before they reach an OS call
// or a slice construction.
func Mul(a, b uintptr) (uintptr, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > ^uintptr(0)/b {
		return 0, false
	}
	return a * b, true
}
