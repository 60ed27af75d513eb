package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// Test_Bind_DispatchesToCapabilities verifies a bound record routes each
// interface call to the matching function.
func Test_Bind_DispatchesToCapabilities(t *testing.T) {
	pa := newPadArena()

	a, err := Bind(Funcs{
		AllocFunc:  pa.Alloc,
		ResizeFunc: pa.Resize,
		FreeFunc:   pa.Free,
	})
	require.NoError(t, err)

	p, err := a.Alloc(8, 8, 4)
	require.NoError(t, err)
	require.Equal(t, 1, pa.allocs, "Alloc must reach the bound capability")

	require.True(t, a.Resize(p, 8, 8, 8), "in-reservation resize through the binding")

	a.Free(p)
	require.Equal(t, 1, pa.frees, "Free must reach the bound capability")
}

// Test_Bind_MissingCapability verifies that a record with any nil field
// is refused before it can be dispatched.
func Test_Bind_MissingCapability(t *testing.T) {
	pa := newPadArena()

	tests := []struct {
		name string
		f    Funcs
	}{
		{
			name: "nil AllocFunc",
			f:    Funcs{ResizeFunc: pa.Resize, FreeFunc: pa.Free},
		},
		{
			name: "nil ResizeFunc",
			f:    Funcs{AllocFunc: pa.Alloc, FreeFunc: pa.Free},
		},
		{
			name: "nil FreeFunc",
			f:    Funcs{AllocFunc: pa.Alloc, ResizeFunc: pa.Resize},
		},
		{
			name: "empty record",
			f:    Funcs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Bind(tt.f)
			require.ErrorIs(t, err, ErrMissingCapability)
			require.Nil(t, a, "no allocator may escape a failed Bind")
		})
	}
}

// Test_Bind_NopCapabilities verifies the no-op stand-ins are legal
// capabilities: Resize always declines, Free is callable, and the block
// stays usable throughout.
func Test_Bind_NopCapabilities(t *testing.T) {
	pa := newPadArena()

	a, err := Bind(Funcs{
		AllocFunc:  pa.Alloc,
		ResizeFunc: NopResize,
		FreeFunc:   NopFree,
	})
	require.NoError(t, err)

	p, err := a.Alloc(4, 4, 8)
	require.NoError(t, err)

	view := unsafe.Slice((*byte)(p), 32)
	view[0] = 0xEE

	require.False(t, a.Resize(p, 4, 4, 16), "NopResize must decline")
	require.Equal(t, byte(0xEE), view[0], "declined resize leaves contents alone")

	a.Free(p)
	require.Equal(t, 0, pa.frees, "NopFree must not reach the arena")
	require.Equal(t, byte(0xEE), view[0], "block survives a no-op free")
}
