package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path)
	l.Log("first")
	l.Log("second")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] first") {
		t.Errorf("Lines()[0] = %q, want [timestamp] first", lines[0])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("file has %d lines, want 2", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines() should return a copy")
	}
}

func TestHandler(t *testing.T) {
	l := New("")
	log := slog.New(l.Handler(slog.LevelWarn))

	log.Info("hidden")
	log.Warn("plane input corrected", "field", "xSize", "value", float32(-2))
	log.WithGroup("plane").With("segments", 4).Error("bad", "n", 1)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "WARN plane input corrected field=xSize value=-2") {
		t.Errorf("Lines()[0] = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "ERROR bad plane.segments=4 plane.n=1") {
		t.Errorf("Lines()[1] = %q", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
