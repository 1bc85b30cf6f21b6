package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintKeyValueLongKey(t *testing.T) {
	tests := []struct {
		name  string
		width int
		key   string
	}{
		{"fits", 12, "NPI"},
		{"longer than width", 12, "use_first_name_alias"},
		{"zero width", 0, "taxonomy_description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printKeyValueWidth(&buf, tt.width, tt.key, "value")

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if len(lines) != 1 {
				t.Fatalf("printKeyValueWidth() wrote %d lines, want 1:\n%s", len(lines), buf.String())
			}
			if !strings.Contains(lines[0], tt.key) || !strings.Contains(lines[0], "value") {
				t.Errorf("line = %q, want key and value together", lines[0])
			}
		})
	}
}

func TestPrintKeyValueEmpty(t *testing.T) {
	var buf bytes.Buffer
	printKeyValue(&buf, "Credential", "")
	if !strings.Contains(buf.String(), "-") {
		t.Errorf("empty value should render as -, got %q", buf.String())
	}
}
