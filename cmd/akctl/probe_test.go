package main

import (
	"strings"
	"testing"
)

func TestProbeCommand(t *testing.T) {
	tests := []struct {
		name        string
		pages       uint64
		at          string
		json        bool
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "default run",
			pages:       4,
			wantContain: []string{"Mapped and touched", "4 pages"},
		},
		{
			name:        "single page",
			pages:       1,
			wantContain: []string{"1 pages"},
		},
		{
			name:        "json output",
			pages:       2,
			json:        true,
			wantJSON:    true,
			wantContain: []string{"\"pages\": 2", "start"},
		},
		{
			name:    "zero pages rejected",
			pages:   0,
			wantErr: true,
		},
		{
			name:    "malformed address",
			pages:   1,
			at:      "not-an-address",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, false, false, tt.json)

			out, err := captureOutput(t, func() error {
				return runProbe(tt.pages, tt.at)
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output:\n%s", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("runProbe: %v", err)
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
