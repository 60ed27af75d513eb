package main

import (
	"strings"
	"testing"
)

func TestSoakCommand(t *testing.T) {
	tests := []struct {
		name        string
		pages       uint64
		rounds      uint64
		touch       bool
		json        bool
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "short soak with touch",
			pages:       2,
			rounds:      16,
			touch:       true,
			wantContain: []string{"16 round trips", "cycled:", "rate:"},
		},
		{
			name:        "soak without touch",
			pages:       1,
			rounds:      8,
			touch:       false,
			wantContain: []string{"8 round trips"},
		},
		{
			name:        "json output",
			pages:       1,
			rounds:      4,
			touch:       true,
			json:        true,
			wantJSON:    true,
			wantContain: []string{"\"rounds\": 4", "bytes_total"},
		},
		{
			name:    "zero rounds rejected",
			pages:   1,
			rounds:  0,
			wantErr: true,
		},
		{
			name:    "zero pages rejected",
			pages:   0,
			rounds:  4,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, false, false, tt.json)

			out, err := captureOutput(t, func() error {
				return runSoak(tt.pages, tt.rounds, tt.touch)
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output:\n%s", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("runSoak: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, out)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
