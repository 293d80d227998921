package shared

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name string
		ms   int
		want string
	}{
		{name: "two and a half minutes", ms: 150000, want: "2:30"},
		{name: "pads seconds under ten", ms: 65000, want: "1:05"},
		{name: "zero", ms: 0, want: "0:00"},
		{name: "truncates partial seconds", ms: 59999, want: "0:59"},
		{name: "over an hour", ms: 3723000, want: "62:03"},
		{name: "negative clamps to zero", ms: -1000, want: "0:00"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.ms); got != tt.want {
				t.Errorf("FormatDuration(%d) = %v, want %v", tt.ms, got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("NewLogger writes to given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		WithLogger(logger, "component", "test").Info("hello")

		out := buf.String()
		if !strings.Contains(out, "hello") || !strings.Contains(out, "component=test") {
			t.Errorf("unexpected log output: %q", out)
		}
	})

	t.Run("NewFileLogger creates directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "spotview.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if logger == nil {
			t.Fatal("expected logger")
		}
	})

	t.Run("NewFileLogger rejects empty path", func(t *testing.T) {
		if _, err := NewFileLogger(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("ParseLogLevel", func(t *testing.T) {
		if got := ParseLogLevel("debug"); got != log.DebugLevel {
			t.Errorf("expected debug level, got %v", got)
		}
		if got := ParseLogLevel("nonsense"); got != log.InfoLevel {
			t.Errorf("expected fallback to info, got %v", got)
		}
		if got := ParseLogLevel(""); got != log.InfoLevel {
			t.Errorf("expected info for empty string, got %v", got)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
