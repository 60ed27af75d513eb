package main

import (
	"strings"
	"testing"
)

func TestPagesizeCommand(t *testing.T) {
	tests := []struct {
		name        string
		json        bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "text output",
			wantContain: []string{"Page size:", "bytes"},
		},
		{
			name:        "json output",
			json:        true,
			wantJSON:    true,
			wantContain: []string{"page_size_bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, false, false, tt.json)

			out, err := captureOutput(t, runPagesize)
			if err != nil {
				t.Fatalf("runPagesize: %v", err)
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

func TestPagesizeQuiet(t *testing.T) {
	withFlags(t, false, true, false)

	out, err := captureOutput(t, runPagesize)
	if err != nil {
		t.Fatalf("runPagesize: %v", err)
	}
	if out != "" {
		t.Errorf("quiet mode should print nothing, got:\n%s", out)
	}
}
