package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("PROPERTY", "VALUE")
	table.Row("ServerName", "MyServer")
	table.Row("ServerPort", "26900")
	table.Flush()

	out := buf.String()
	for _, want := range []string{"PROPERTY", "ServerName", "26900"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"name": "ServerName"}

	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["name"] != "ServerName" {
		t.Errorf("Unexpected decoded value: %v", decoded)
	}
}

func TestOutputResultsYAML(t *testing.T) {
	var buf bytes.Buffer

	if err := OutputResults(&buf, "yaml", map[string]int{"count": 3}); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}
	if !strings.Contains(buf.String(), "count: 3") {
		t.Errorf("Unexpected YAML output: %q", buf.String())
	}
}

func TestOutputResultsUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	if err := OutputResults(&buf, "xml", nil); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a much longer string", 10, "a much ..."},
		{"abcdef", 3, "abc"},
		// Cuts land on rune boundaries, never mid-character.
		{"Zömbieländ Dedicated", 10, "Zömbiel..."},
		{"日本語サーバー", 5, "日本..."},
		{"日本語", 2, "日本"},
	}
	for _, tt := range tests {
		got := TruncateString(tt.input, tt.maxLen)
		if got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("TruncateString(%q, %d) produced invalid UTF-8: %q", tt.input, tt.maxLen, got)
		}
	}
}
