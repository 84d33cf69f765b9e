package cmdutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "debug", true)
	if err != nil {
		t.Fatal(err)
	}
	log.Warn("hidden")
	log.Error("shown", "barcode", "ACGT")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("quiet logger leaked a warning: %q", out)
	}
	if !strings.Contains(out, "barcode=ACGT") || strings.Contains(out, "time=") {
		t.Fatalf("unexpected log line: %q", out)
	}
}
