package main

import (
	"math"
	"testing"
)

func TestPageCount(t *testing.T) {
	got, err := pageCount(16)
	if err != nil {
		t.Fatalf("pageCount(16): %v", err)
	}
	if got != 16 {
		t.Fatalf("pageCount(16) = %d", got)
	}

	if _, err := pageCount(0); err != nil {
		t.Fatalf("pageCount(0): %v", err)
	}

	// Whether a value above 2^32 fits depends on the platform word
	// size; either way it must never be silently truncated.
	const huge = uint64(math.MaxUint32) + 1
	got, err = pageCount(huge)
	if uint64(^uintptr(0)) >= huge {
		if err != nil {
			t.Fatalf("pageCount(%d): %v", huge, err)
		}
		if uint64(got) != huge {
			t.Fatalf("pageCount(%d) = %d", huge, got)
		}
	} else if err == nil {
		t.Fatalf("pageCount(%d) = %d, expected rejection", huge, got)
	}
}
