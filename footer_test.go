package scpdoc

import (
	"strings"
	"testing"
)

func TestRenderFooter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   Record
		expected []string
	}{
		{
			name:     "empty record uses fixed fallbacks",
			record:   Record{},
			expected: []string{"<span>«</span>", "<span>SCP</span>", "<span>»</span>"},
		},
		{
			name:     "center falls back to document title",
			record:   Record{"title": "SCP-3008"},
			expected: []string{"<span>«</span>", "<span>SCP-3008</span>", "<span>»</span>"},
		},
		{
			name: "explicit slots win",
			record: Record{
				"title":  "SCP-3008",
				"footer": map[string]any{"left": "begin", "center": "middle", "right": "end"},
			},
			expected: []string{"<span>begin</span>", "<span>middle</span>", "<span>end</span>"},
		},
		{
			name: "slots default independently",
			record: Record{
				"footer": map[string]any{"center": "only the middle"},
			},
			expected: []string{"<span>«</span>", "<span>only the middle</span>", "<span>»</span>"},
		},
		{
			name: "present-but-empty slot is kept empty",
			record: Record{
				"footer": map[string]any{"left": ""},
			},
			expected: []string{"<span></span>"},
		},
		{
			name: "slot content escaped",
			record: Record{
				"footer": map[string]any{"center": "a < b"},
			},
			expected: []string{"<span>a &lt; b</span>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := renderFooter(tt.record)
			for _, want := range tt.expected {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}
